package classname

import (
	"sort"
	"strconv"
	"strings"
)

// PropsKey returns a content-derived key for props. Keys are sorted, so two
// maps with equal contents always produce the same key regardless of how
// they were built.
func PropsKey(props Props) string {
	var b strings.Builder
	writeProps(&b, props)
	return b.String()
}

// ConfigKey returns a content-derived key for cfg.
func ConfigKey(cfg Config) string {
	return "prefix=" + strconv.Quote(cfg.Prefix) + ";debug=" + strconv.FormatBool(cfg.Debug)
}

// ConditionsKey returns a content-derived key for an ordered condition list.
func ConditionsKey(conditions []Condition) string {
	var b strings.Builder
	for i, c := range conditions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("when:")
		if c.When == nil {
			b.WriteByte('-')
		} else {
			writeProps(&b, c.When)
		}
		b.WriteString(" use:")
		b.WriteString(strconv.Quote(c.Use))
	}
	return b.String()
}

func resolverKey(props Props, cfg Config) string {
	return PropsKey(props) + "/" + ConfigKey(cfg)
}

func writeProps(b *strings.Builder, props Props) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte(':')
		b.WriteString(props[k].key())
	}
	b.WriteByte('}')
}
