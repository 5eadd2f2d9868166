package handlers

import (
	"net/http"
	"time"

	"modcon/internal/speclib"
)

func (a *App) ModuleLibrary(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, speclib.Modules())
}

// CreateModule validates a library module and returns it with a fresh ID.
// Modules are not persisted; the caller owns the library state.
func (a *App) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req speclib.ModuleRequest
	if !a.decode(w, r, &req) {
		return
	}
	mod, err := speclib.NewModule(req, time.Now().UTC())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, mod)
}

func (a *App) FunnelStages(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"stages": speclib.Stages()})
}

func (a *App) TicketStatuses(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, speclib.Tickets())
}
