package colorgen

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "colorlint"
	Text        string   `json:"Text"`        // "color utility \"bg-primary-550\" uses unknown shade \"550\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Card.vue"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the class)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported as the FromLinter of every issue.
const LinterName = "colorlint"

// Issue message formats
const (
	IssueUnknownShade = "color utility %q uses unknown shade %q (available: %s)"
	IssueBadOpacity   = "color utility %q uses unsupported opacity %q (use 5-100 in steps of 5)"
	IssueNotGenerated = "color utility %q is not generated"
)
