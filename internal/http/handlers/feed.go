package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"modcon/internal/feed"
	"modcon/internal/fieldalias"
	"modcon/internal/middleware"
)

type validateFeedRequest struct {
	Platform string              `json:"platform"`
	Rows     []fieldalias.Record `json:"rows"`
}

// GenerateFeed assembles DCO feed rows. Rows without geo targeting inherit the
// requester's country.
func (a *App) GenerateFeed(w http.ResponseWriter, r *http.Request) {
	var in feed.Input
	if !a.decode(w, r, &in) {
		return
	}
	rows := feed.Generate(in, feed.GenerateOptions{DefaultGeo: middleware.CountryFromContext(r.Context())})
	a.json(w, http.StatusOK, map[string]any{"rows": rows, "count": len(rows)})
}

func (a *App) ValidateFeed(w http.ResponseWriter, r *http.Request) {
	var req validateFeedRequest
	if !a.decode(w, r, &req) {
		return
	}
	a.json(w, http.StatusOK, feed.Validate(req.Rows, req.Platform))
}

func (a *App) FeedConstraints(w http.ResponseWriter, r *http.Request) {
	c, err := feed.ConstraintsFor(chi.URLParam(r, "platform"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, c)
}
