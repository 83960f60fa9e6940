package classname

// Props maps property names to scalar values. A resolver treats the map it
// was built with as an immutable snapshot.
type Props map[string]Value

// PropsOf builds Props from a loosely typed map, dropping every entry whose
// value is not a scalar.
func PropsOf(m map[string]any) Props {
	props := make(Props, len(m))
	for k, v := range m {
		if val, ok := ValueOf(v); ok {
			props[k] = val
		}
	}
	return props
}

// Get returns the value for key, or the Undefined value when key is absent.
func (p Props) Get(key string) Value {
	return p[key]
}

func (p Props) clone() Props {
	if p == nil {
		return Props{}
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Condition is a unit of class text gated by an optional predicate.
//
// A nil When means the condition is always active. A non-nil but empty When
// is also always active; it lets a condition be written in structured form
// while being included unconditionally.
type Condition struct {
	When Props
	Use  string
}

// Use returns a bare literal condition.
func Use(text string) Condition {
	return Condition{Use: text}
}

// When returns a condition that contributes text only when every entry of
// props matches the resolver's properties.
func When(props Props, text string) Condition {
	if props == nil {
		props = Props{}
	}
	return Condition{When: props, Use: text}
}

// Config is fixed for the lifetime of a resolver.
type Config struct {
	// Prefix is prepended to each base class name. Empty disables prefixing.
	Prefix string
	// Debug switches the resolver to the annotated multi-line trace.
	Debug bool
}
