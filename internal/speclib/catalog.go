package speclib

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"modcon/internal/domain"
)

//go:embed data/platform_specs.json
var defaultCatalog []byte

const defaultCatalogMediaType = "image_or_video"

// Catalog is the nested per-platform format library.
type Catalog struct {
	Platforms map[string]CatalogPlatform `json:"platforms" yaml:"platforms"`
}

// CatalogPlatform lists the formats one platform supports.
type CatalogPlatform struct {
	Name    string          `json:"name" yaml:"name"`
	Formats []CatalogFormat `json:"formats" yaml:"formats"`
}

// CatalogFormat is one format entry inside a platform.
type CatalogFormat struct {
	ID                    string    `json:"id" yaml:"id"`
	Name                  string    `json:"name" yaml:"name"`
	Ratio                 string    `json:"ratio" yaml:"ratio"`
	ResolutionRecommended string    `json:"resolution_recommended" yaml:"resolution_recommended"`
	MediaType             string    `json:"media_type" yaml:"media_type"`
	SafeZones             SafeZones `json:"safe_zones" yaml:"safe_zones"`
}

// SafeZones carries the free-text safe-zone instruction of a format.
type SafeZones struct {
	Instruction string `json:"instruction" yaml:"instruction"`
}

// LoadCatalog reads a catalog from path. YAML is used for .yaml and .yml
// files, JSON otherwise. An empty path loads the embedded default catalog.
// A missing file yields an empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return ParseCatalog(defaultCatalog, ".json")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Catalog{Platforms: map[string]CatalogPlatform{}}, nil
		}
		return nil, fmt.Errorf("speclib: read catalog: %w", err)
	}
	return ParseCatalog(data, filepath.Ext(path))
}

// ParseCatalog decodes catalog bytes. ext selects the decoder.
func ParseCatalog(data []byte, ext string) (*Catalog, error) {
	var cat Catalog
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("speclib: decode yaml catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("speclib: decode json catalog: %w", err)
		}
	}
	if cat.Platforms == nil {
		cat.Platforms = map[string]CatalogPlatform{}
	}
	return &cat, nil
}

// PlatformIDs returns the catalog platform keys in sorted order.
func (c *Catalog) PlatformIDs() []string {
	ids := make([]string, 0, len(c.Platforms))
	for id := range c.Platforms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Flatten turns the nested catalog into Spec rows with IDs of the form
// PLATFORM_FORMAT. Unparseable resolutions leave width and height at 0.
func (c *Catalog) Flatten() []domain.Spec {
	var specs []domain.Spec
	for _, platformID := range c.PlatformIDs() {
		platform := c.Platforms[platformID]
		for _, f := range platform.Formats {
			width, height := parseResolution(f.ResolutionRecommended)
			placement := f.Name
			if placement == "" {
				placement = f.ID
			}
			mediaType := f.MediaType
			if mediaType == "" {
				mediaType = defaultCatalogMediaType
			}
			specs = append(specs, domain.Spec{
				ID:          strings.ToUpper(platformID + "_" + f.ID),
				Platform:    displayName(platformID, platform.Name),
				Placement:   placement,
				Width:       width,
				Height:      height,
				Orientation: f.Ratio,
				MediaType:   mediaType,
				Notes:       f.SafeZones.Instruction,
				Source:      domain.SpecSourceCatalog,
			})
		}
	}
	return specs
}

// Constraints renders a short constraint description for a platform, or for
// one of its formats when formatID matches.
func (c *Catalog) Constraints(platformID, formatID string) string {
	platform, ok := c.Platforms[platformID]
	if !ok {
		return fmt.Sprintf("Generic Spec: Use standard high-res assets for %s.", platformID)
	}
	if formatID != "" {
		for _, f := range platform.Formats {
			if f.ID != formatID {
				continue
			}
			return fmt.Sprintf("SPEC: %s (%s). Res: %s. SAFETY: %s",
				f.Name,
				orDefault(f.Ratio, "N/A"),
				orDefault(f.ResolutionRecommended, "High"),
				orDefault(f.SafeZones.Instruction, "Standard safe zones."),
			)
		}
	}
	names := make([]string, 0, len(platform.Formats))
	for _, f := range platform.Formats {
		names = append(names, f.Name)
	}
	return fmt.Sprintf("Platform: %s. Available Formats: %s", displayName(platformID, platform.Name), strings.Join(names, ", "))
}

func parseResolution(res string) (int, int) {
	parts := strings.Split(strings.ToLower(res), "x")
	if len(parts) != 2 {
		return 0, 0
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil {
		return 0, 0
	}
	return w, h
}

func displayName(id, name string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
