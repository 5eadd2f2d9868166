// Package export renders export rows and decisioning rules into the feed
// files DCO and production automation platforms ingest.
package export

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"modcon/internal/domain"
	"modcon/pkg/zip"
)

var exportsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "modcon_exports_rendered_total",
	Help: "Platform feed exports rendered, by platform and format.",
}, []string{"platform", "format"})

// Store persists rendered exports.
type Store interface {
	Write(ctx context.Context, key string, data []byte) (string, error)
}

// Request is one export of rows to one platform.
type Request struct {
	Platform     string
	CampaignName string
	Rows         []domain.ExportRow
	Rules        []domain.DecisionRule
}

// Result is a rendered export.
type Result struct {
	Platform         string            `json:"platform"`
	Format           domain.FeedFormat `json:"format"`
	Filename         string            `json:"filename"`
	Content          string            `json:"content"`
	RowCount         int               `json:"row_count"`
	ExportedAt       time.Time         `json:"exported_at"`
	ValidationPassed bool              `json:"validation_passed"`
	ValidationErrors []string          `json:"validation_errors"`
	Warnings         []string          `json:"warnings"`
	StorageKey       string            `json:"storage_key,omitempty"`
}

// Generator renders exports. The Store is optional.
type Generator struct {
	store  Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewGenerator builds a Generator. Pass a nil store to skip persistence.
func NewGenerator(store Store, logger zerolog.Logger) *Generator {
	return &Generator{store: store, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Generate renders req. Unsupported platforms are rejected before any row is
// looked at. Row problems are reported in the result and never block rendering.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	p, ok := Lookup(req.Platform)
	if !ok {
		return nil, fmt.Errorf("export platform %q: %w", req.Platform, domain.ErrUnsupportedPlatform)
	}
	now := g.now()
	content, err := p.render(req.Rows, req.Rules, req.CampaignName, now)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", p.ID, err)
	}

	errs, warnings := checkRows(req.Rows)
	res := &Result{
		Platform:         string(p.ID),
		Format:           p.FeedFormat,
		Filename:         fmt.Sprintf("%s_%s_feed.%s", req.CampaignName, p.ID, p.FeedFormat),
		Content:          string(content),
		RowCount:         len(req.Rows),
		ExportedAt:       now,
		ValidationPassed: len(errs) == 0,
		ValidationErrors: errs,
		Warnings:         warnings,
	}
	exportsRendered.WithLabelValues(string(p.ID), string(p.FeedFormat)).Inc()

	if g.store != nil {
		key, err := g.store.Write(ctx, path.Join("exports", now.Format("2006-01-02"), res.Filename), content)
		if err != nil {
			return nil, fmt.Errorf("store export: %w", err)
		}
		res.StorageKey = key
	}
	g.logger.Info().
		Str("platform", res.Platform).
		Int("rows", res.RowCount).
		Bool("validation_passed", res.ValidationPassed).
		Msg("export rendered")
	return res, nil
}

// Bundle renders the same rows for several platforms and archives the files
// into one zip. Any unsupported platform fails the whole bundle.
func (g *Generator) Bundle(ctx context.Context, req Request, platforms []string) ([]byte, []*Result, error) {
	for _, id := range platforms {
		if _, ok := Lookup(id); !ok {
			return nil, nil, fmt.Errorf("export platform %q: %w", id, domain.ErrUnsupportedPlatform)
		}
	}
	results := make([]*Result, 0, len(platforms))
	files := make([]zip.File, 0, len(platforms))
	for _, id := range platforms {
		r := req
		r.Platform = id
		res, err := g.Generate(ctx, r)
		if err != nil {
			return nil, nil, err
		}
		results = append(results, res)
		files = append(files, zip.File{Name: res.Filename, Modified: res.ExportedAt, Data: []byte(res.Content)})
	}
	archive, err := zip.Archive(files)
	if err != nil {
		return nil, nil, fmt.Errorf("bundle exports: %w", err)
	}
	return archive, results, nil
}

func checkRows(rows []domain.ExportRow) (errs, warnings []string) {
	errs, warnings = []string{}, []string{}
	for i, row := range rows {
		if row.CreativeID == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing creative_id", i+1))
		}
		if row.CreativeName == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Missing creative_name", i+1))
		}
		if len(row.Modules) == 0 {
			warnings = append(warnings, fmt.Sprintf("Row %d: No modules defined", i+1))
		}
	}
	return errs, warnings
}
