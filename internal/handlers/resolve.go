package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/setclassname/internal/prefs"
	"github.com/vango-dev/setclassname/internal/recipe"
	"github.com/vango-dev/setclassname/pkg/classname"
)

const maxBodyBytes = 1 << 20

type resolveRequest struct {
	Props  classname.Props `json:"props"`
	Config struct {
		Prefix string `json:"prefix"`
		Debug  bool   `json:"debug"`
	} `json:"config"`
	Conditions []classname.Condition `json:"conditions"`
}

// Resolve handles POST /resolve.
func (h *Handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	cfg := classname.Config{Prefix: req.Config.Prefix, Debug: req.Config.Debug}
	res := h.service.Resolve(r.Context(), req.Props, cfg, req.Conditions)
	h.writeJSON(w, http.StatusOK, res)
}

// Component handles GET /components/{name}. Query parameters become the
// property map.
func (h *Handlers) Component(w http.ResponseWriter, r *http.Request) {
	component, err := h.recipes.Load().Get(chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, recipe.ErrUnknownComponent) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	res := h.service.Resolve(r.Context(), propsFromQuery(r.URL.Query()), h.config(r), component.Conditions)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Resolver-Id", res.ResolverID)
	if _, err := w.Write([]byte(res.Class)); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

type statsResponse struct {
	Cache      classname.Stats `json:"cache"`
	Components []string        `json:"components"`
}

// Stats handles GET /stats.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, statsResponse{
		Cache:      h.service.Stats(),
		Components: h.recipes.Load().Names(),
	})
}

// SetPrefs handles POST /prefs from a form with prefix and debug fields.
func (h *Handlers) SetPrefs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := prefs.Preferences{
		Prefix: r.PostForm.Get("prefix"),
		Debug:  r.PostForm.Get("debug") == "true" || r.PostForm.Get("debug") == "on",
	}
	if err := h.prefs.Set(w, p); err != nil {
		h.logger.Error("failed to set preferences", "error", err)
		http.Error(w, "failed to save preferences", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearPrefs handles DELETE /prefs.
func (h *Handlers) ClearPrefs(w http.ResponseWriter, r *http.Request) {
	h.prefs.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
