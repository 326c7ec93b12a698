// Package report renders boot-test outcomes as a console summary and as a
// JSON document for downstream tooling. It layers presentation on top of
// the classifier and never re-derives any classification logic.
package report

// Severity selects the glyph and color for one rendered line.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityFail
	SeverityWarn
	SeverityInfo
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Glyph returns the status marker used throughout the tool's output.
func (s Severity) Glyph() string {
	switch s {
	case SeverityPass:
		return "✅"
	case SeverityFail:
		return "❌"
	case SeverityWarn:
		return "⚠️ "
	default:
		return "ℹ️ "
	}
}

// Styled wraps text in the ANSI color for the severity. It is a pure
// string transformation; callers decide whether color is appropriate.
func Styled(s Severity, text string) string {
	switch s {
	case SeverityPass:
		return ansiGreen + text + ansiReset
	case SeverityFail:
		return ansiRed + text + ansiReset
	case SeverityWarn:
		return ansiYellow + text + ansiReset
	default:
		return ansiCyan + text + ansiReset
	}
}
