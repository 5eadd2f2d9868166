package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"modcon/internal/domain"
)

// ListSpecs returns catalog and custom specs, optionally narrowed by ?platform=.
func (a *App) ListSpecs(w http.ResponseWriter, r *http.Request) {
	specs, err := a.Specs.All(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items := specs
	if platform := strings.TrimSpace(r.URL.Query().Get("platform")); platform != "" {
		items = make([]domain.Spec, 0, len(specs))
		for _, s := range specs {
			if strings.EqualFold(s.Platform, platform) {
				items = append(items, s)
			}
		}
	}
	if items == nil {
		items = []domain.Spec{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (a *App) GetSpec(w http.ResponseWriter, r *http.Request) {
	spec, err := a.Specs.Lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, spec)
}

func (a *App) CreateSpec(w http.ResponseWriter, r *http.Request) {
	var spec domain.Spec
	if !a.decode(w, r, &spec) {
		return
	}
	saved, err := a.Specs.SaveCustom(r.Context(), spec)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, saved)
}

// SpecConstraints describes a catalog platform (?platform=) or one of its formats (&format=).
func (a *App) SpecConstraints(w http.ResponseWriter, r *http.Request) {
	platform := strings.TrimSpace(r.URL.Query().Get("platform"))
	if platform == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "platform is required")
		return
	}
	text, err := a.Specs.Constraints(r.Context(), platform, strings.TrimSpace(r.URL.Query().Get("format")))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"platform": platform, "constraints": text})
}
