package handlers

import (
	"net/http"
)

type healthBody struct {
	Status string `json:"status"`
	Specs  int    `json:"specs"`
	Error  string `json:"error,omitempty"`
}

// Health reports whether the spec catalog and custom specs load. Every
// production and export path depends on them.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	specs, err := a.Specs.All(r.Context())
	if err != nil {
		a.Logger.Warn().Err(err).Msg("health check: spec library unavailable")
		a.json(w, http.StatusServiceUnavailable, healthBody{Status: "degraded", Error: err.Error()})
		return
	}
	a.json(w, http.StatusOK, healthBody{Status: "ok", Specs: len(specs)})
}
