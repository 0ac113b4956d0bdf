// Package institutions keeps catalog groups in step with the OBIS institute
// registry, enriched with Ocean Expert directory data.
package institutions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/obis"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/oceanexpert"
	"github.com/obis/doi-harvester/internal/pkg/application/slug"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/svcs/institutions")

const (
	DataSource          string = "obis_oceanexpert"
	DefaultResumeKey    string = "sync-institutes"
	DefaultResumeEvery  int    = 10
	minimumGroupNameLen int    = 3
)

const (
	QualityOceanExpert        string = "Ocean Expert data"
	QualityOceanExpertEnglish string = "Ocean Expert data (English name)"
	QualityOBISOnly           string = "OBIS data only"
)

//go:generate moq -rm -out registry_mock.go . InstituteRegistry
type InstituteRegistry interface {
	InstitutesWithOceanExpertID(ctx context.Context) ([]obis.Institute, int, error)
}

//go:generate moq -rm -out directory_mock.go . Directory
type Directory interface {
	Institute(ctx context.Context, id string) (*oceanexpert.Record, error)
}

//go:generate moq -rm -out catalog_mock.go . Catalog
type Catalog interface {
	GroupList(ctx context.Context) ([]string, error)
	GroupShow(ctx context.Context, id string) (*domain.Group, error)
	GroupCreate(ctx context.Context, group domain.Group) (*domain.Group, error)
	GroupUpdate(ctx context.Context, group domain.Group) (*domain.Group, error)
}

//go:generate moq -rm -out progress_mock.go . ProgressStore
type ProgressStore interface {
	SaveProgress(key string, index int) error
	Progress(key string) (int, bool, error)
	ClearProgress(key string) error
}

type Options struct {
	// Delay is the pause after each Ocean Expert request.
	Delay       time.Duration
	ResumeKey   string
	ResumeEvery int
}

type Summary struct {
	Total       int
	Created     int
	Updated     int
	Failed      int
	Skipped     int
	Enriched    int
	Interrupted bool
}

func (s Summary) ExitCode() int {
	if s.Failed > 0 || s.Interrupted {
		return 1
	}
	return 0
}

func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Created: %d\n", s.Created)
	fmt.Fprintf(&sb, "Updated: %d\n", s.Updated)
	fmt.Fprintf(&sb, "Failed: %d\n", s.Failed)
	fmt.Fprintf(&sb, "Skipped: %d\n", s.Skipped)
	fmt.Fprintf(&sb, "Ocean Expert enriched: %d\n", s.Enriched)
	fmt.Fprintf(&sb, "Total processed: %d\n", s.Total)
	if s.Total > 0 {
		fmt.Fprintf(&sb, "Success rate: %.1f%%\n", float64(s.Created+s.Updated)/float64(s.Total)*100)
	}
	return sb.String()
}

type InstituteSync struct {
	registry  InstituteRegistry
	directory Directory
	catalog   Catalog
	progress  ProgressStore
	opts      Options
	out       io.Writer
	log       zerolog.Logger

	today func() time.Time
}

func NewInstituteSync(logger zerolog.Logger, registry InstituteRegistry, directory Directory, catalog Catalog, progress ProgressStore, out io.Writer, opts Options) *InstituteSync {
	if opts.ResumeKey == "" {
		opts.ResumeKey = DefaultResumeKey
	}
	if opts.ResumeEvery <= 0 {
		opts.ResumeEvery = DefaultResumeEvery
	}
	if out == nil {
		out = io.Discard
	}

	return &InstituteSync{
		registry:  registry,
		directory: directory,
		catalog:   catalog,
		progress:  progress,
		opts:      opts,
		out:       out,
		log:       logger,
		today:     time.Now,
	}
}

// Sync processes every institute that has an Ocean Expert id. It continues
// from saved progress, and saves its position when ctx is cancelled.
func (s *InstituteSync) Sync(ctx context.Context) (summary Summary, err error) {
	ctx, span := tracer.Start(ctx, "sync-institutes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, s.log, ctx)

	fmt.Fprintf(s.out, "Fetching OBIS institutions...\n")

	institutes, fetched, err := s.registry.InstitutesWithOceanExpertID(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch institutes: %w", err)
	}

	fmt.Fprintf(s.out, "  Fetched %d institutions, %d with Ocean Expert IDs\n", fetched, len(institutes))

	if len(institutes) == 0 {
		err = errors.New("no institutions found")
		return summary, err
	}

	existing, err := s.existingGroups(ctx, log)
	if err != nil {
		return summary, err
	}

	start := s.resumePosition(log, len(institutes))
	if start > 0 {
		fmt.Fprintf(s.out, "Resuming from institution %d\n", start+1)
	}

	summary.Total = len(institutes)

	for i := start; i < len(institutes); i++ {
		if ctx.Err() != nil {
			return s.interrupted(log, i, summary, ctx.Err())
		}

		fmt.Fprintf(s.out, "[%d/%d] Processing: %s (OE ID: %s)\n", i+1, len(institutes), institutes[i].Name, institutes[i].OceanExpertID())

		if err := s.syncInstitute(ctx, log, institutes[i], existing, &summary); err != nil {
			// the catalog write for institute i did not complete, so it is redone on resume
			return s.interrupted(log, i, summary, err)
		}

		if (i+1)%s.opts.ResumeEvery == 0 {
			s.saveProgress(log, i+1)
		}

		fmt.Fprintln(s.out)
	}

	if s.progress != nil {
		if pErr := s.progress.ClearProgress(s.opts.ResumeKey); pErr != nil {
			log.Warn().Err(pErr).Msg("failed to clear progress")
		}
	}

	log.Info().
		Int("created", summary.Created).Int("updated", summary.Updated).Int("failed", summary.Failed).
		Int("skipped", summary.Skipped).Int("enriched", summary.Enriched).
		Msg("institute sync complete")

	return summary, nil
}

func (s *InstituteSync) interrupted(log zerolog.Logger, next int, summary Summary, cause error) (Summary, error) {
	summary.Interrupted = true
	s.saveProgress(log, next)

	fmt.Fprintf(s.out, "\nInterrupted at institution %d. Progress saved, rerun to resume.\n", next+1)

	return summary, cause
}

func (s *InstituteSync) syncInstitute(ctx context.Context, log zerolog.Logger, inst obis.Institute, existing map[string]domain.Group, summary *Summary) error {
	oeID := inst.OceanExpertID()
	log = log.With().Str("oceanExpertID", oeID).Logger()

	rec, err := s.directory.Institute(ctx, oeID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		warning := domain.EnrichmentWarning{Source: oceanexpert.RegistryName, ID: oeID, Err: err}
		fmt.Fprintf(s.out, "  ! %s\n", warning.Error())
		log.Warn().Err(warning).Msg("continuing without enrichment")
		rec = nil
	} else if rec.Institute() != nil {
		summary.Enriched++
	}

	if err := s.pause(ctx); err != nil {
		return err
	}

	group, ok := GroupFromInstitute(inst, rec, s.today())
	if !ok {
		summary.Skipped++
		fmt.Fprintf(s.out, "  ! Skipping institution with invalid name: '%s' -> '%s'\n", group.Title, group.Name)
		return nil
	}

	current, found := existing[slug.Institution(institutionName(inst))]
	if !found {
		current, found = existing[group.Name]
	}

	if found {
		group.ID = current.ID
		group.Name = current.Name

		if _, err := s.catalog.GroupUpdate(ctx, group); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			summary.Failed++
			fmt.Fprintf(s.out, "✗ Failed to update %s: %s\n", group.Title, err.Error())
			log.Error().Err(err).Msg("failed to update group")
			return nil
		}

		summary.Updated++
		fmt.Fprintf(s.out, "↻ Updated group: %s (%s)\n", group.Title, quality(group))
		return nil
	}

	created, err := s.catalog.GroupCreate(ctx, group)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		summary.Failed++
		fmt.Fprintf(s.out, "✗ Failed to create %s: %s\n", group.Title, err.Error())
		log.Error().Err(err).Msg("failed to create group")
		return nil
	}

	summary.Created++
	existing[group.Name] = *created
	fmt.Fprintf(s.out, "✓ Created group: %s (%s)\n", group.Title, quality(group))

	return nil
}

func (s *InstituteSync) pause(ctx context.Context) error {
	if s.opts.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.opts.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *InstituteSync) existingGroups(ctx context.Context, log zerolog.Logger) (map[string]domain.Group, error) {
	names, err := s.catalog.GroupList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	existing := make(map[string]domain.Group, len(names))
	for _, name := range names {
		group, err := s.catalog.GroupShow(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("group", name).Msg("failed to fetch group details")
			continue
		}
		existing[name] = *group
	}

	return existing, nil
}

func (s *InstituteSync) resumePosition(log zerolog.Logger, count int) int {
	if s.progress == nil {
		return 0
	}

	index, found, err := s.progress.Progress(s.opts.ResumeKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read progress, starting from the beginning")
		return 0
	}

	if !found || index < 0 || index >= count {
		return 0
	}

	return index
}

func (s *InstituteSync) saveProgress(log zerolog.Logger, index int) {
	if s.progress == nil {
		return
	}

	if err := s.progress.SaveProgress(s.opts.ResumeKey, index); err != nil {
		log.Warn().Err(err).Msg("failed to save progress")
	}
}

func institutionName(inst obis.Institute) string {
	if name := strings.TrimSpace(inst.Name); name != "" {
		return name
	}
	return "Institution " + inst.OceanExpertID()
}

func quality(g domain.Group) string {
	if q, ok := g.Extra("data_quality"); ok {
		return q
	}
	return "unknown"
}

// GroupFromInstitute builds the catalog group for an institute. Ocean Expert
// values win over registry values when present. The second result is false
// when no usable group name can be derived.
func GroupFromInstitute(inst obis.Institute, rec *oceanexpert.Record, today time.Time) (domain.Group, bool) {
	var oe oceanexpert.Institute
	if rec != nil {
		oe = rec.Institute()
	}

	title, dataQuality := strings.TrimSpace(inst.Name), QualityOBISOnly
	if oe.Get("instName") != "" {
		title, dataQuality = oe.Get("instName"), QualityOceanExpert
	} else if oe.Get("instNameEng") != "" {
		title, dataQuality = oe.Get("instNameEng"), QualityOceanExpertEnglish
	} else if title == "" {
		title = "Unknown Institution"
	}

	group := domain.Group{
		Name:  slug.Institution(title),
		Title: title,
		Type:  "group",
		State: "active",
	}

	if len(group.Name) < minimumGroupNameLen {
		return group, false
	}

	description := []string{}

	if oe != nil {
		address := []string{}
		for _, key := range []string{"instAddress", "addr2", "city", "state", "postcode", "country"} {
			if v := oe.Get(key); v != "" {
				address = append(address, v)
			}
		}

		if len(address) > 0 {
			description = append(description, "Address: "+strings.Join(address, ", "))
		}
		if v := oe.Get("acronym"); v != "" {
			description = append(description, "Acronym: "+v)
		}
		if v := oe.Get("activities"); v != "" {
			description = append(description, "Activities: "+v)
		}
		if count := rec.MemberCount(); count > 0 {
			description = append(description, fmt.Sprintf("Ocean Expert Members: %d", count))
		}
	} else if inst.Country != "" {
		description = append(description, "Country: "+inst.Country)
	}

	group.Description = strings.Join(description, "\n")

	extra := func(key, value string) {
		if value != "" {
			group.Extras = append(group.Extras, domain.Extra{Key: key, Value: value})
		}
	}

	extra("ocean_expert_id", inst.OceanExpertID())
	extra("obis_institution_code", inst.Code)
	extra("edmo_code", inst.EDMOCode())

	if oe != nil {
		extra("website", oe.Get("instUrl"))
		extra("email", oe.Get("instEmail"))
		extra("phone", oe.Get("instTel"))
		extra("fax", oe.Get("instFax"))

		extra("country", oe.Get("country"))
		extra("country_code", oe.Get("countryCode"))
		extra("region", oe.Get("instRegion"))

		extra("acronym", oe.Get("acronym"))
		extra("institution_type", oe.Get("insttypeName"))
		extra("ocean_expert_edmo_code", oe.Get("edmoCode"))

		group.ImageURL = oe.Get("instLogo")

		extra("activities", oe.Get("activities"))
		extra("ocean_expert_updated", oe.Get("lDateUpdated"))
	}

	extra("data_source", DataSource)
	extra("data_quality", dataQuality)
	extra("sync_date", today.Format("2006-01-02"))

	return group, true
}
