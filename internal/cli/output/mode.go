// Package output renders command results for terminals, pipes and
// machine consumers.
package output

import "strings"

// OutputMode selects how a Renderer formats results.
type OutputMode string

// Output modes.
const (
	// ModeAuto picks ModeText on a terminal and ModeMarkdown otherwise.
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Mode parses a mode name. Empty and unknown names map to ModeAuto.
func Mode(s string) OutputMode {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeText, ModeMarkdown, ModeJSON, ModeYAML:
		return m
	case "md":
		return ModeMarkdown
	default:
		return ModeAuto
	}
}

// Modes lists the mode names accepted by Mode, for flag completion.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON), string(ModeYAML)}
}

// IsStructured reports whether m emits machine-readable documents.
func (m OutputMode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
