package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"modcon/internal/production"
)

type statusRequest struct {
	Status string `json:"status"`
}

func (a *App) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req production.GenerateRequest
	if !a.decode(w, r, &req) {
		return
	}
	plan, err := a.Production.Generate(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, plan)
}

func (a *App) GetBatch(w http.ResponseWriter, r *http.Request) {
	plan, err := a.Production.GetBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, plan)
}

func (a *App) UpdateAssetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !a.decode(w, r, &req) {
		return
	}
	asset, err := a.Production.UpdateAssetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, asset)
}

func (a *App) BuildJobs(w http.ResponseWriter, r *http.Request) {
	var req production.BuildRequest
	if !a.decode(w, r, &req) {
		return
	}
	if len(req.SpecIDs) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "spec_ids is required")
		return
	}
	res, err := a.Production.BuildJobs(r.Context(), req)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, res)
}

func (a *App) GetJobPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := a.Production.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, plan)
}

func (a *App) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !a.decode(w, r, &req) {
		return
	}
	job, err := a.Production.UpdateJobStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "jobID"), req.Status)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, job)
}
