package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/setclassname/internal/recipe"
	"github.com/vango-dev/setclassname/pkg/classname"
	"github.com/vango-dev/setclassname/pkg/ui"
)

var previewCode = []classname.Condition{
	classname.Use("mt-4 rounded-md bg-muted p-4 font-mono text-sm whitespace-pre-wrap"),
}

// page wraps body in a minimal HTML document.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`+
			templ.EscapeString(title)+`</title><script src="https://cdn.tailwindcss.com"></script></head><body class="p-8">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("render failed", "path", r.URL.Path, "error", err)
	}
}

// Preview handles GET /preview/{name}: the recipe rendered as an element
// next to the class string it produced.
func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	component, err := h.recipes.Load().Get(name)
	if err != nil {
		if errors.Is(err, recipe.ErrUnknownComponent) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cfg := h.config(r)
	props := propsFromQuery(r.URL.Query())
	class := h.service.Resolve(r.Context(), props, cfg, component.Conditions).Class

	raw := make(map[string]any, len(props))
	for k, v := range props {
		raw[k] = v.Interface()
	}

	kit := ui.NewKit(h.service, cfg)
	h.render(w, r, page(name, ui.Fragment(
		kit.Element(ui.ElementProps{
			Tag:        "section",
			Props:      raw,
			Conditions: component.Conditions,
			Base:       ui.Base{Attrs: map[string]any{"id": "preview"}, Children: ui.Text(name)},
		}),
		kit.Element(ui.ElementProps{
			Tag:        "pre",
			Conditions: previewCode,
			Base:       ui.Base{Children: ui.Text(class)},
		}),
	)))
}

// Showcase handles GET /showcase: every kit component under the current
// configuration.
func (h *Handlers) Showcase(w http.ResponseWriter, r *http.Request) {
	kit := ui.NewKit(h.service, h.config(r))

	variants := []ui.ButtonVariant{
		ui.ButtonVariantDefault,
		ui.ButtonVariantDestructive,
		ui.ButtonVariantOutline,
		ui.ButtonVariantSecondary,
		ui.ButtonVariantGhost,
		ui.ButtonVariantLink,
	}
	buttons := make([]templ.Component, 0, len(variants)+1)
	for _, v := range variants {
		buttons = append(buttons, kit.Button(ui.ButtonProps{
			Variant: v,
			Base:    ui.Base{Children: ui.Text(string(v))},
		}))
	}
	buttons = append(buttons, kit.Button(ui.ButtonProps{
		Disabled: true,
		Base:     ui.Base{Children: ui.Text("disabled")},
	}))

	h.render(w, r, page("showcase", kit.Card(ui.CardProps{
		Elevated: true,
		Base: ui.Base{Children: ui.Fragment(
			kit.Label(ui.LabelProps{For: "buttons", Base: ui.Base{Children: ui.Text("Buttons")}}),
			ui.Fragment(buttons...),
			kit.Badge(ui.BadgeProps{Variant: ui.BadgeVariantSecondary, Base: ui.Base{Children: ui.Text("badge")}}),
		)},
	})))
}
