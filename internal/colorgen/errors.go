package colorgen

import "errors"

// Generation errors. Each one aborts the whole run; callers match them with
// errors.Is since they are always wrapped with context.
var (
	// ErrFileAccess means the CSS source file could not be read.
	ErrFileAccess = errors.New("css source file not readable")
	// ErrInvalidColor means a var(...) expression has no property name.
	ErrInvalidColor = errors.New("color value is not a valid CSS variable")
	// ErrConfiguration means the theme has no color table.
	ErrConfiguration = errors.New("theme does not have any colors")
)
