package colorgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// scanState tracks where the custom property scanner is within a declaration
type scanState int

const (
	stateSearch scanState = iota // looking for the property name
	stateName                    // saw the name, expecting ':'
	stateValue                   // collecting value tokens until ';' or '}'
)

// FindCustomProperty returns the value of the first `name: value;`
// declaration in text. Comments are ignored and references such as
// var(--name) never match because they are not followed by a colon.
func FindCustomProperty(text, name string) (string, bool) {
	lexer := css.NewLexer(parse.NewInputString(text))

	state := stateSearch
	var value strings.Builder
	depth := 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// EOF while collecting still counts as a match
			if state == stateValue {
				return strings.TrimSpace(value.String()), true
			}
			return "", false
		}
		if tt == css.CommentToken {
			continue
		}

		switch state {
		case stateSearch:
			if isPropertyName(tt) && string(data) == name {
				state = stateName
			}

		case stateName:
			switch {
			case tt == css.WhitespaceToken:
			case tt == css.ColonToken:
				state = stateValue
			case isPropertyName(tt) && string(data) == name:
				// `--a --a: x` is not valid CSS but stay on the latest name
			default:
				state = stateSearch
			}

		case stateValue:
			switch tt {
			case css.LeftParenthesisToken, css.FunctionToken:
				depth++
			case css.RightParenthesisToken:
				if depth > 0 {
					depth--
				}
			case css.SemicolonToken, css.RightBraceToken:
				if depth == 0 {
					return strings.TrimSpace(value.String()), true
				}
			}
			value.Write(data)
		}
	}
}

func isPropertyName(tt css.TokenType) bool {
	return tt == css.CustomPropertyNameToken || tt == css.IdentToken
}

// ReadCustomProperty reads the stylesheet at path and looks up name.
// A property that is not declared yields "" without error.
func ReadCustomProperty(path, name string) (string, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w: %w", path, ErrFileAccess, err)
	}

	value, _ := FindCustomProperty(string(content), name)
	return value, nil
}
