package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vango-dev/setclassname/internal/prefs"
	"github.com/vango-dev/setclassname/internal/recipe"
	"github.com/vango-dev/setclassname/internal/service"
	"github.com/vango-dev/setclassname/pkg/classname"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	defaults classname.Config
	service  *service.Service
	recipes  *recipe.Store
	prefs    *prefs.Store
	logger   *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(
	defaults classname.Config,
	svc *service.Service,
	recipes *recipe.Store,
	prefStore *prefs.Store,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		defaults: defaults,
		service:  svc,
		recipes:  recipes,
		prefs:    prefStore,
		logger:   logger,
	}
}

// reserved query parameters that configure the resolver instead of
// contributing properties.
const (
	queryPrefix = "prefix"
	queryDebug  = "debug"
)

// config layers the server defaults, the preferences cookie and any query
// overrides, in that order.
func (h *Handlers) config(r *http.Request) classname.Config {
	cfg := h.defaults
	if p, ok := h.prefs.Get(r); ok {
		cfg = p.Config()
	}

	q := r.URL.Query()
	if q.Has(queryPrefix) {
		cfg.Prefix = q.Get(queryPrefix)
	}
	if q.Has(queryDebug) {
		cfg.Debug = q.Get(queryDebug) == "true" || q.Get(queryDebug) == "1"
	}
	return cfg
}

// propsFromQuery turns query parameters into properties, skipping the
// reserved configuration keys. Only the first value of each key is used.
func propsFromQuery(q url.Values) classname.Props {
	props := make(classname.Props, len(q))
	for key, values := range q {
		if key == queryPrefix || key == queryDebug || len(values) == 0 {
			continue
		}
		props[key] = classname.ParseValue(values[0])
	}
	return props
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
