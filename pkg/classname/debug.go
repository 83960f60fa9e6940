package classname

import "strings"

const (
	PassMarker = "•"
	FailMarker = "✕"
	// Joiner is the zero-width joiner used to glue failing class text together
	// so it stays legible without producing separate class names.
	Joiner = "\u200d"

	lineBreak = "\r\n"
)

// RenderDebug renders one annotated line per condition, in input order.
// Failing conditions are kept and marked rather than dropped.
func RenderDebug(props Props, conditions []Condition, cfg Config) []string {
	lines := make([]string, 0, len(conditions))
	for _, c := range conditions {
		text := Render(c.Use, cfg)
		if Passes(props, c) {
			lines = append(lines, PassMarker+" "+text)
			continue
		}
		lines = append(lines, FailMarker+Joiner+strings.ReplaceAll(text, " ", Joiner))
	}
	return lines
}

// JoinDebug joins debug lines with CRLF, leading with one CRLF so the trace
// is offset from whatever surrounds it.
func JoinDebug(lines []string) string {
	return lineBreak + strings.Join(lines, lineBreak)
}
