// Package speclib resolves delivery specs by identifier from the canonical
// environment table, the platform catalog and the custom spec file.
package speclib

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"modcon/internal/domain"
)

const (
	DefaultCacheTTL = 5 * time.Minute

	catalogKey = "catalog"
	customKey  = "custom"
)

var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "modcon_spec_cache_lookups_total",
		Help: "Spec cache lookups by store and result.",
	},
	[]string{"store", "result"},
)

// Options configures a Library.
type Options struct {
	// CatalogPath points at a JSON or YAML platform catalog. Empty uses the embedded catalog.
	CatalogPath string
	// CustomPath is the JSON file user-added specs are stored in.
	CustomPath string
	CacheTTL   time.Duration
	Logger     zerolog.Logger
}

// Library is the spec lookup service.
type Library struct {
	catalogPath string
	custom      *CustomStore
	catalogs    *expirable.LRU[string, *Catalog]
	customs     *expirable.LRU[string, []domain.Spec]
	logger      zerolog.Logger
}

// New constructs a Library. Nothing is read from disk until the first lookup.
func New(opts Options) *Library {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	var custom *CustomStore
	if opts.CustomPath != "" {
		custom = NewCustomStore(opts.CustomPath)
	}
	return &Library{
		catalogPath: opts.CatalogPath,
		custom:      custom,
		catalogs:    expirable.NewLRU[string, *Catalog](1, nil, ttl),
		customs:     expirable.NewLRU[string, []domain.Spec](1, nil, ttl),
		logger:      opts.Logger,
	}
}

// Lookup resolves id against the canonical table, then the catalog, then
// custom specs. It returns domain.ErrNotFound when no store knows the id.
func (l *Library) Lookup(ctx context.Context, id string) (domain.Spec, error) {
	if spec, ok := Environment(id); ok {
		return spec, nil
	}
	specs, err := l.All(ctx)
	if err != nil {
		return domain.Spec{}, err
	}
	for _, spec := range specs {
		if spec.ID == id {
			return spec, nil
		}
	}
	return domain.Spec{}, fmt.Errorf("spec %s: %w", id, domain.ErrNotFound)
}

// All returns the flattened catalog followed by custom specs.
func (l *Library) All(ctx context.Context) ([]domain.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cat, err := l.catalog()
	if err != nil {
		return nil, err
	}
	specs := cat.Flatten()
	custom, err := l.customSpecs()
	if err != nil {
		return nil, err
	}
	return append(specs, custom...), nil
}

// SaveCustom appends a user-defined spec and invalidates the custom cache.
func (l *Library) SaveCustom(ctx context.Context, spec domain.Spec) (domain.Spec, error) {
	if l.custom == nil {
		return domain.Spec{}, fmt.Errorf("%w: custom spec storage is not configured", domain.ErrInvalidSpec)
	}
	cat, err := l.catalog()
	if err != nil {
		return domain.Spec{}, err
	}
	catalogIDs := make(map[string]struct{})
	for _, s := range cat.Flatten() {
		catalogIDs[s.ID] = struct{}{}
	}
	taken := func(id string) bool {
		if _, ok := canonical[id]; ok {
			return true
		}
		_, ok := catalogIDs[id]
		return ok
	}
	saved, err := l.custom.Append(ctx, spec, taken)
	if err != nil {
		return domain.Spec{}, err
	}
	l.customs.Remove(customKey)
	l.logger.Info().Str("spec_id", saved.ID).Msg("custom spec saved")
	return saved, nil
}

// Constraints describes a catalog platform or one of its formats.
func (l *Library) Constraints(ctx context.Context, platformID, formatID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cat, err := l.catalog()
	if err != nil {
		return "", err
	}
	return cat.Constraints(platformID, formatID), nil
}

func (l *Library) catalog() (*Catalog, error) {
	if cat, ok := l.catalogs.Get(catalogKey); ok {
		cacheLookups.WithLabelValues(catalogKey, "hit").Inc()
		return cat, nil
	}
	cacheLookups.WithLabelValues(catalogKey, "miss").Inc()
	cat, err := LoadCatalog(l.catalogPath)
	if err != nil {
		return nil, err
	}
	l.catalogs.Add(catalogKey, cat)
	return cat, nil
}

func (l *Library) customSpecs() ([]domain.Spec, error) {
	if l.custom == nil {
		return nil, nil
	}
	if specs, ok := l.customs.Get(customKey); ok {
		cacheLookups.WithLabelValues(customKey, "hit").Inc()
		return specs, nil
	}
	cacheLookups.WithLabelValues(customKey, "miss").Inc()
	specs, err := l.custom.Load()
	if err != nil {
		return nil, fmt.Errorf("custom specs %s: %w", l.custom.Path(), err)
	}
	l.customs.Add(customKey, specs)
	return specs, nil
}
