package classname

import "github.com/google/uuid"

// Resolver turns condition lists into class strings for one fixed property
// map and configuration. Results are memoized by condition content.
type Resolver struct {
	id      uuid.UUID
	props   Props
	config  Config
	results map[string]string
	cache   *Cache
}

func newResolver(c *Cache, props Props, cfg Config) *Resolver {
	return &Resolver{
		id:      uuid.New(),
		props:   props.clone(),
		config:  cfg,
		results: make(map[string]string),
		cache:   c,
	}
}

// Resolve returns the class string, or the debug trace when the resolver
// was built with Config.Debug.
func (r *Resolver) Resolve(conditions []Condition) string {
	out, _ := r.lookup(conditions)
	return out
}

// ResolveCached is Resolve that also reports whether the result came from
// the result cache.
func (r *Resolver) ResolveCached(conditions []Condition) (string, bool) {
	return r.lookup(conditions)
}

func (r *Resolver) lookup(conditions []Condition) (string, bool) {
	key := ConditionsKey(conditions)
	if out, ok := r.results[key]; ok {
		r.cache.hit(LayerResult)
		return out, true
	}
	r.cache.miss(LayerResult)

	out := Assemble(r.props, conditions, r.config)
	r.results[key] = out
	return out, false
}

// Func adapts r to the call shape component code uses.
func (r *Resolver) Func() func(...Condition) string {
	return func(conditions ...Condition) string {
		return r.Resolve(conditions)
	}
}

// ID identifies r in logs and stats.
func (r *Resolver) ID() uuid.UUID { return r.id }

// Config returns the configuration r was built with.
func (r *Resolver) Config() Config { return r.config }

// Props returns a copy of the bound property map.
func (r *Resolver) Props() Props { return r.props.clone() }

// Len returns the number of memoized results.
func (r *Resolver) Len() int { return len(r.results) }
