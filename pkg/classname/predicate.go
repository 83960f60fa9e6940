package classname

// Passes reports whether c is active for props. Every key in c.When must be
// strictly equal to the same key in props; a key absent from props reads as
// Undefined.
func Passes(props Props, c Condition) bool {
	for key, want := range c.When {
		if !props[key].Equal(want) {
			return false
		}
	}
	return true
}

// Filter returns the conditions that pass, in input order.
func Filter(props Props, conditions []Condition) []Condition {
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		if Passes(props, c) {
			out = append(out, c)
		}
	}
	return out
}
