package classname

import "strings"

// Assemble computes the output for one resolver call without any caching.
//
// In normal mode failing conditions are dropped, survivors are rendered and
// joined with single spaces. Conditions whose text renders empty contribute
// no separator. In debug mode every condition is rendered through
// RenderDebug instead.
func Assemble(props Props, conditions []Condition, cfg Config) string {
	if cfg.Debug {
		return JoinDebug(RenderDebug(props, conditions, cfg))
	}

	var b strings.Builder
	for _, c := range conditions {
		if !Passes(props, c) {
			continue
		}
		text := Render(c.Use, cfg)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}
