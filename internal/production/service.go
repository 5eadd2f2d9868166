// Package production turns strategies and spec selections into tracked
// production tickets: per-environment assets grouped in batches, and
// consolidated jobs grouped in plans.
package production

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"modcon/internal/domain"
)

const swapAttempts = 3

var (
	assetsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modcon_production_assets_generated_total",
		Help: "Production asset tickets created by the plan generator.",
	})
	jobsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modcon_production_jobs_built_total",
		Help: "Consolidated production jobs created by matrix builds.",
	})
	unresolvedSpecs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modcon_production_unresolved_specs_total",
		Help: "Requested spec or environment IDs that could not be resolved.",
	}, []string{"operation"})
)

// SpecResolver resolves spec identifiers.
type SpecResolver interface {
	Lookup(ctx context.Context, id string) (domain.Spec, error)
}

// Service generates and tracks production tickets.
type Service struct {
	specs  SpecResolver
	repo   domain.ProductionRepository
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires a Service to its spec source and repository.
func NewService(specs SpecResolver, repo domain.ProductionRepository, logger zerolog.Logger) *Service {
	return &Service{
		specs:  specs,
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// resolve looks up every id in order. Unknown ids are returned separately;
// any other lookup failure aborts.
func (s *Service) resolve(ctx context.Context, ids []string, operation string) ([]domain.Spec, []string, error) {
	var (
		specs   []domain.Spec
		skipped []string
	)
	for _, id := range ids {
		spec, err := s.specs.Lookup(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				skipped = append(skipped, id)
				unresolvedSpecs.WithLabelValues(operation).Inc()
				s.logger.Warn().Str("spec_id", id).Str("operation", operation).Msg("spec not found, skipping")
				continue
			}
			return nil, nil, fmt.Errorf("resolve spec %s: %w", id, err)
		}
		specs = append(specs, spec)
	}
	return specs, skipped, nil
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
