package handlers

import (
	"net/http"

	"modcon/internal/providers/brief"
)

// Chat forwards one briefing turn to the agent.
func (a *App) Chat(w http.ResponseWriter, r *http.Request) {
	var req brief.ChatRequest
	if !a.decode(w, r, &req) {
		return
	}
	reply, err := a.Agent.Reply(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, brief.ChatResponse{Reply: reply})
}
