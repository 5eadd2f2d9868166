package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"modcon/internal/decisioning"
	"modcon/internal/domain"
	"modcon/internal/export"
	"modcon/internal/feed"
	"modcon/internal/fieldalias"
)

type exportRequest struct {
	Platform     string                `json:"platform"`
	Platforms    []string              `json:"platforms,omitempty"`
	CampaignName string                `json:"campaign_name"`
	Rows         []domain.ExportRow    `json:"rows,omitempty"`
	FeedRows     []domain.FeedRow      `json:"feed_rows,omitempty"`
	Convert      feed.ConvertOptions   `json:"convert"`
	Rules        []domain.DecisionRule `json:"decisioning_rules,omitempty"`
}

// toExport merges explicit export rows with converted feed rows.
func (req exportRequest) toExport(platform string) export.Request {
	rows := append([]domain.ExportRow(nil), req.Rows...)
	if len(req.FeedRows) > 0 {
		rows = append(rows, feed.ToExportRows(req.FeedRows, req.Convert)...)
	}
	return export.Request{
		Platform:     platform,
		CampaignName: coalesce(req.CampaignName, "campaign"),
		Rows:         rows,
		Rules:        req.Rules,
	}
}

// ExportModules renders one platform feed. With ?download=1 the file itself is
// returned instead of the JSON envelope.
func (a *App) ExportModules(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !a.decode(w, r, &req) {
		return
	}
	res, err := a.Exports.Generate(r.Context(), req.toExport(req.Platform))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if r.URL.Query().Get("download") == "1" {
		contentType := "text/csv; charset=utf-8"
		if res.Format == domain.FeedFormatJSON {
			contentType = "application/json"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(res.Content))
		return
	}
	a.json(w, http.StatusOK, res)
}

// ExportBundle renders several platforms and returns them as one zip archive.
func (a *App) ExportBundle(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !a.decode(w, r, &req) {
		return
	}
	if len(req.Platforms) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "platforms is required")
		return
	}
	archive, results, err := a.Exports.Bundle(r.Context(), req.toExport(""), req.Platforms)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	name := fmt.Sprintf("%s_feeds.zip", strings.ReplaceAll(coalesce(req.CampaignName, "campaign"), " ", "_"))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("X-Export-Count", fmt.Sprint(len(results)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func (a *App) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"platforms":  export.Platforms(),
		"categories": export.Categories,
	})
}

func (a *App) DecisioningOperators(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, decisioning.Operators())
}

type decisioningRequest struct {
	Rules []fieldalias.Record `json:"rules"`
}

func (a *App) ValidateDecisioning(w http.ResponseWriter, r *http.Request) {
	var req decisioningRequest
	if !a.decode(w, r, &req) {
		return
	}
	a.json(w, http.StatusOK, decisioning.Validate(req.Rules))
}

// Workflows lists the legal status moves for jobs, asset and board tickets.
func (a *App) Workflows(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"job_statuses":    domain.JobWorkflow(),
		"asset_statuses":  domain.AssetWorkflow(),
		"ticket_statuses": domain.TicketWorkflow(),
	})
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
