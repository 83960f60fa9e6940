// Package service shares one classname cache between request goroutines.
//
// classname.Cache does no locking of its own; Service serializes access to it
// and collapses identical in-flight requests.
package service

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/vango-dev/setclassname/pkg/classname"
	"github.com/vango-dev/setclassname/pkg/ui"
)

var tracer = otel.Tracer("setclassname/service")

// Result is the outcome of one resolve call.
//
// Cached reports the result-cache lookup of the call that did the work.
// Shared is set when identical concurrent calls were collapsed into that one,
// in which case every caller receives the same Cached value.
type Result struct {
	Class      string `json:"class"`
	ResolverID string `json:"resolver_id"`
	Cached     bool   `json:"cached"`
	Shared     bool   `json:"shared"`
}

// Service is safe for concurrent use.
type Service struct {
	mu     sync.Mutex
	cache  *classname.Cache
	flight singleflight.Group
	logger *slog.Logger
}

// New creates a Service over a fresh cache built with opts.
func New(logger *slog.Logger, opts ...classname.CacheOption) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts = append([]classname.CacheOption{classname.WithLogger(logger)}, opts...)
	return &Service{
		cache:  classname.NewCache(opts...),
		logger: logger.With("component", "service"),
	}
}

// Resolve returns the class string for conditions under props and cfg.
func (s *Service) Resolve(ctx context.Context, props classname.Props, cfg classname.Config, conditions []classname.Condition) Result {
	_, span := tracer.Start(ctx, "classname.resolve", trace.WithAttributes(
		attribute.Int("classname.conditions", len(conditions)),
		attribute.Int("classname.props", len(props)),
		attribute.String("classname.prefix", cfg.Prefix),
		attribute.Bool("classname.debug", cfg.Debug),
	))
	defer span.End()

	key := classname.PropsKey(props) + "/" + classname.ConfigKey(cfg) + "/" + classname.ConditionsKey(conditions)
	v, _, shared := s.flight.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		r := s.cache.Resolver(props, cfg)
		class, cached := r.ResolveCached(conditions)
		return Result{Class: class, ResolverID: r.ID().String(), Cached: cached}, nil
	})
	res := v.(Result)
	res.Shared = shared

	span.SetAttributes(
		attribute.String("classname.resolver_id", res.ResolverID),
		attribute.Bool("classname.cached", res.Cached),
		attribute.Bool("classname.shared", shared),
	)
	return res
}

// Bind implements ui.Binder so components can render against the shared
// cache from any goroutine.
func (s *Service) Bind(props classname.Props, cfg classname.Config) ui.SetClassName {
	return func(conditions ...classname.Condition) string {
		return s.Resolve(context.Background(), props, cfg, conditions).Class
	}
}

// Stats returns a snapshot of the cache counters.
func (s *Service) Stats() classname.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Stats()
}
