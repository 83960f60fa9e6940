package classname

import (
	"log/slog"
	"sync"
)

// Layer names one of the two memoization levels.
type Layer string

const (
	// LayerResolver caches resolvers by property map and configuration.
	LayerResolver Layer = "resolver"
	// LayerResult caches resolved class strings by condition list.
	LayerResult Layer = "result"
)

// Observer is notified of every cache lookup. Implementations must be cheap;
// they run on the resolve path.
type Observer interface {
	Hit(layer Layer)
	Miss(layer Layer)
}

// Stats is a snapshot of cache activity.
type Stats struct {
	ResolverHits   int64 `json:"resolver_hits"`
	ResolverMisses int64 `json:"resolver_misses"`
	ResultHits     int64 `json:"result_hits"`
	ResultMisses   int64 `json:"result_misses"`
	Resolvers      int   `json:"resolvers"`
	Results        int   `json:"results"`
}

// Cache holds the resolver cache and, through its resolvers, the result
// caches. Entries are never evicted.
//
// A Cache performs no locking. Hosts that share one across goroutines must
// serialize access themselves.
type Cache struct {
	resolvers map[string]*Resolver
	stats     Stats
	observer  Observer
	logger    *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithObserver registers an observer for cache hits and misses.
func WithObserver(o Observer) CacheOption {
	return func(c *Cache) {
		c.observer = o
	}
}

// WithLogger sets the logger. Without one, nothing is logged.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		resolvers: make(map[string]*Resolver),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "classname")
	return c
}

// Resolver returns the resolver bound to props and cfg, building it on the
// first request for that content. Equal props and config always yield the
// same *Resolver.
func (c *Cache) Resolver(props Props, cfg Config) *Resolver {
	key := resolverKey(props, cfg)
	if r, ok := c.resolvers[key]; ok {
		c.hit(LayerResolver)
		return r
	}
	c.miss(LayerResolver)

	r := newResolver(c, props, cfg)
	c.resolvers[key] = r
	c.logger.Debug("resolver created",
		"resolver_id", r.id,
		"props", len(r.props),
		"prefix", cfg.Prefix,
		"debug", cfg.Debug,
	)
	return r
}

// Stats returns counters and entry counts.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Resolvers = len(c.resolvers)
	for _, r := range c.resolvers {
		s.Results += len(r.results)
	}
	return s
}

// Len returns the number of cached resolvers.
func (c *Cache) Len() int {
	return len(c.resolvers)
}

func (c *Cache) hit(layer Layer) {
	switch layer {
	case LayerResolver:
		c.stats.ResolverHits++
	case LayerResult:
		c.stats.ResultHits++
	}
	if c.observer != nil {
		c.observer.Hit(layer)
	}
}

func (c *Cache) miss(layer Layer) {
	switch layer {
	case LayerResolver:
		c.stats.ResolverMisses++
	case LayerResult:
		c.stats.ResultMisses++
	}
	if c.observer != nil {
		c.observer.Miss(layer)
	}
}

var (
	defaultCache *Cache
	defaultOnce  sync.Once
)

// Default returns the process-wide cache used by Create. Prefer NewCache
// wherever the cache scope can be owned explicitly.
func Default() *Cache {
	defaultOnce.Do(func() {
		defaultCache = NewCache()
	})
	return defaultCache
}

// Create is the factory over the default cache.
func Create(props Props, cfg Config) *Resolver {
	return Default().Resolver(props, cfg)
}
