// Package classname resolves conditional CSS class lists.
//
// A Resolver is bound to a property map and a Config. It takes an ordered
// list of conditions, keeps those whose When predicate matches the bound
// properties, normalizes and optionally prefixes their class text, and joins
// the survivors with single spaces:
//
//	cache := classname.NewCache()
//	r := cache.Resolver(classname.Props{"variant": classname.String("primary")}, classname.Config{})
//	r.Resolve([]classname.Condition{
//		classname.Use("inline-flex items-center"),
//		classname.When(classname.Props{"variant": classname.String("primary")}, "bg-primary"),
//	})
//	// "inline-flex items-center bg-primary"
//
// Both resolvers and their results are memoized by content, so structurally
// equal inputs never recompute. Nothing is evicted; use it with a bounded set
// of property and condition shapes.
package classname
