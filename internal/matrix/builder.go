// Package matrix groups selected delivery specs into production jobs, one per
// physical asset.
package matrix

import (
	"fmt"
	"slices"
	"strings"

	"modcon/internal/domain"
	"modcon/internal/fieldalias"
)

const (
	genericDimensions = "GENERIC"
	defaultFileType   = "asset"
	defaultPlatform   = "Unknown"
	standardNotes     = "Standard"

	notesHeader   = "SAFE ZONE GUIDANCE:\n"
	notesFallback = "• Standard safe zones apply. Check platform specs before final delivery."
)

// Request is the input of one matrix build.
type Request struct {
	Specs                   []fieldalias.Record
	CreativeConcept         string
	CampaignName            string
	SingleMindedProposition string
	// SourceType, when set, is stamped onto every job.
	SourceType string
}

// Summary describes a built matrix.
type Summary struct {
	TotalJobs           int      `json:"total_jobs"`
	TotalDestinations   int      `json:"total_destinations"`
	ConsolidatedFormats []string `json:"consolidated_formats"`
}

// normalized is one spec with every alias chain resolved.
type normalized struct {
	specID      string
	platform    string
	formatName  string
	dimensions  string
	fileType    string
	aspect      string
	notes       string
	maxDuration *int
	fileSizeKB  *int
}

func normalize(rec fieldalias.Record, idx int) normalized {
	n := normalized{
		specID:     rec.TextOr(fieldalias.SpecID, fmt.Sprintf("SPEC-%d", idx+1)),
		platform:   rec.TextOr(fieldalias.PlatformName, defaultPlatform),
		formatName: rec.Text(fieldalias.FormatName),
		dimensions: rec.Text(fieldalias.Dimensions),
		fileType:   rec.TextOr(fieldalias.FileType, defaultFileType),
		aspect:     rec.Text(fieldalias.AspectRatio),
		notes:      rec.Text(fieldalias.SafeZoneNotes),
	}
	if n.dimensions == "" {
		w, h := rec.Text(fieldalias.Width), rec.Text(fieldalias.Height)
		if w != "" && h != "" {
			n.dimensions = w + "x" + h
		}
	}
	if n.dimensions == "" {
		n.dimensions = genericDimensions
	}
	if d, ok := rec.Int(fieldalias.MaxDuration); ok {
		n.maxDuration = &d
	}
	if kb, ok := rec.Int(fieldalias.FileSizeLimit); ok {
		n.fileSizeKB = &kb
	}
	return n
}

type group struct {
	job       *domain.ProductionJob
	notes     []string
	durations []int
}

// Build collapses the requested specs into production jobs. Specs sharing
// dimensions, file type and creative concept land in the same job. Jobs are
// returned in creation order; an empty spec list yields no jobs.
func Build(req Request) []domain.ProductionJob {
	var order []string
	groups := make(map[string]*group)

	for idx, rec := range req.Specs {
		spec := normalize(rec, idx)
		key := spec.dimensions + "_" + spec.fileType + "_" + req.CreativeConcept

		g, ok := groups[key]
		if !ok {
			g = &group{job: newJob(len(order)+1, spec, req)}
			groups[key] = g
			order = append(order, key)
		}

		g.job.Destinations = append(g.job.Destinations, destination(spec))

		if note := strings.TrimSpace(spec.notes); note != "" && spec.notes != standardNotes {
			line := fmt.Sprintf("• %s (%s): %s", spec.platform, spec.formatName, spec.notes)
			if !slices.Contains(g.notes, line) {
				g.notes = append(g.notes, line)
			}
		}
		if spec.maxDuration != nil {
			g.durations = append(g.durations, *spec.maxDuration)
		}
	}

	jobs := make([]domain.ProductionJob, 0, len(order))
	for _, key := range order {
		g := groups[key]
		finalize(g)
		jobs = append(jobs, *g.job)
	}
	return jobs
}

func newJob(n int, spec normalized, req Request) *domain.ProductionJob {
	job := &domain.ProductionJob{
		JobID:                   fmt.Sprintf("JOB-%d", n),
		CreativeConcept:         req.CreativeConcept,
		AssetType:               strings.TrimSpace(coalesce(spec.aspect, spec.dimensions) + " " + spec.fileType),
		Status:                  domain.JobStatusPending,
		FileFormat:              fileFormat(spec.fileType),
		Round:                   "R1",
		Version:                 "v1",
		Priority:                "Medium",
		SourceType:              req.SourceType,
		CampaignName:            req.CampaignName,
		SingleMindedProposition: req.SingleMindedProposition,
	}
	if baseMediaType(spec.fileType) == "video" {
		job.Codec = videoCodec
		job.FrameRate = videoFrameRate
		job.AudioSpec = videoAudioSpec
		job.RequiresSubtitles = true
	}
	return job
}

func destination(spec normalized) domain.DeliveryDestination {
	return domain.DeliveryDestination{
		Platform:        spec.platform,
		SpecID:          spec.specID,
		FormatName:      coalesce(spec.formatName, spec.dimensions),
		SpecialNotes:    coalesce(spec.notes, standardNotes),
		MaxDuration:     spec.maxDuration,
		Dimensions:      spec.dimensions,
		AspectRatio:     spec.aspect,
		MediaType:       spec.fileType,
		FileSizeLimitKB: spec.fileSizeKB,
	}
}

// finalize merges the collected guidance and picks the strictest duration.
func finalize(g *group) {
	job := g.job
	if len(g.notes) > 0 {
		job.ProductionNotes = notesHeader + strings.Join(g.notes, "\n")
	} else {
		job.ProductionNotes = notesHeader + notesFallback
	}

	dims := job.Destinations[0].Dimensions
	fileType := strings.ToUpper(job.Destinations[0].MediaType)
	if len(g.durations) == 0 {
		job.TechnicalSummary = dims + ", " + fileType
		return
	}
	minDuration := slices.Min(g.durations)
	job.MaxDurationSeconds = &minDuration
	job.TechnicalSummary = fmt.Sprintf("%s, max %ds", dims, minDuration)
}

// Summarize counts jobs and destinations and lists the distinct asset types.
func Summarize(jobs []domain.ProductionJob) Summary {
	s := Summary{TotalJobs: len(jobs), ConsolidatedFormats: []string{}}
	for _, job := range jobs {
		s.TotalDestinations += len(job.Destinations)
		if !slices.Contains(s.ConsolidatedFormats, job.AssetType) {
			s.ConsolidatedFormats = append(s.ConsolidatedFormats, job.AssetType)
		}
	}
	return s
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
