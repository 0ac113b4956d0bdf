package batch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/application/harvester"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/batch")

const DefaultResumeEvery int = 10

//go:generate moq -rm -out journal_mock.go . Journal
type Journal interface {
	RecordOutcome(runID uuid.UUID, o domain.HarvestOutcome) error
	SaveProgress(key string, index int) error
	Progress(key string) (int, bool, error)
	ClearProgress(key string) error
}

type Options struct {
	// Force updates existing records without comparing timestamps.
	Force bool
	// Resume continues from the progress saved under ResumeKey.
	Resume      bool
	ResumeKey   string
	ResumeEvery int
}

type Summary struct {
	RunID       uuid.UUID
	Total       int
	Found       int
	Imported    int
	Updated     int
	Failed      int
	Interrupted bool
}

// ExitCode is non-zero when any item failed or there was nothing to do.
func (s Summary) ExitCode() int {
	if s.Failed > 0 || s.Total == 0 {
		return 1
	}
	return 0
}

func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summary:\n")
	fmt.Fprintf(&sb, "  Found: %d/%d datasets in catalog\n", s.Found, s.Total)
	fmt.Fprintf(&sb, "  Imported: %d new datasets\n", s.Imported)
	fmt.Fprintf(&sb, "  Updated: %d datasets\n", s.Updated)
	fmt.Fprintf(&sb, "  Failed: %d operations\n", s.Failed)
	if s.Interrupted {
		fmt.Fprintf(&sb, "  Interrupted: progress saved, rerun with --resume to continue\n")
	}
	return sb.String()
}

// Driver harvests a list of DOIs into the catalog, one at a time.
type Driver struct {
	importer harvester.Importer
	journal  Journal
	out      io.Writer
	opts     Options
	log      zerolog.Logger
}

func NewDriver(logger zerolog.Logger, importer harvester.Importer, journal Journal, out io.Writer, opts Options) *Driver {
	if opts.ResumeEvery <= 0 {
		opts.ResumeEvery = DefaultResumeEvery
	}
	if out == nil {
		out = io.Discard
	}

	return &Driver{
		importer: importer,
		journal:  journal,
		out:      out,
		opts:     opts,
		log:      logger,
	}
}

// Run processes dois in order. Failures of single items are counted and the
// run continues. A cancelled context stops the run and saves the position of
// the first item that did not complete so that a later run can resume.
func (d *Driver) Run(ctx context.Context, dois []string, targetOrg string) (summary Summary, err error) {
	ctx, span := tracer.Start(ctx, "harvest-batch")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, d.log, ctx)

	summary = Summary{RunID: uuid.New(), Total: len(dois)}
	log = log.With().Str("run", summary.RunID.String()).Logger()

	start := d.resumePosition(log, len(dois))
	if start > 0 {
		fmt.Fprintf(d.out, "Resuming at item %d of %d\n\n", start+1, len(dois))
	}

	for i := start; i < len(dois); i++ {
		if ctx.Err() != nil {
			summary.Interrupted = true
			d.saveProgress(log, i)
			err = ctx.Err()
			return summary, err
		}

		outcome := d.process(ctx, log, dois[i], targetOrg, &summary)
		outcome.Index = i

		if outcome.Status == domain.OutcomeInterrupted {
			// item i did not complete and is redone on resume
			summary.Interrupted = true
			d.saveProgress(log, i)
			err = ctx.Err()
			return summary, err
		}

		if d.journal != nil {
			if jErr := d.journal.RecordOutcome(summary.RunID, outcome); jErr != nil {
				log.Warn().Err(jErr).Msg("failed to record outcome")
			}
		}

		if (i+1-start)%d.opts.ResumeEvery == 0 {
			d.saveProgress(log, i+1)
		}
	}

	if d.journal != nil && d.opts.ResumeKey != "" {
		if jErr := d.journal.ClearProgress(d.opts.ResumeKey); jErr != nil {
			log.Warn().Err(jErr).Msg("failed to clear progress")
		}
	}

	log.Info().
		Int("total", summary.Total).Int("found", summary.Found).Int("imported", summary.Imported).
		Int("updated", summary.Updated).Int("failed", summary.Failed).
		Msg("harvest complete")

	return summary, nil
}

func (d *Driver) process(ctx context.Context, log zerolog.Logger, item, targetOrg string, summary *Summary) domain.HarvestOutcome {
	fmt.Fprintf(d.out, "Checking: %s\n", item)
	defer fmt.Fprintln(d.out)

	outcome := domain.HarvestOutcome{Item: item}

	fail := func(err error) domain.HarvestOutcome {
		if ctx.Err() != nil {
			fmt.Fprintf(d.out, "  ! Interrupted\n")
			log.Warn().Err(err).Str("item", item).Msg("harvest item interrupted")

			outcome.Status = domain.OutcomeInterrupted
			return outcome
		}

		summary.Failed++
		fmt.Fprintf(d.out, "  ✗ Error: %s\n", err.Error())
		log.Error().Err(err).Str("item", item).Msg("harvest item failed")

		outcome.Status = domain.OutcomeFailed
		outcome.Message = err.Error()
		return outcome
	}

	canonical, err := doi.Resolve(item)
	if err != nil {
		return fail(err)
	}

	existing, err := d.importer.Lookup(ctx, canonical)
	if err != nil {
		return fail(err)
	}

	if existing == nil {
		fmt.Fprintf(d.out, "  → Not in catalog, importing...\n")

		if _, err = d.importer.Import(ctx, canonical, targetOrg, nil); err != nil {
			return fail(err)
		}

		summary.Imported++
		fmt.Fprintf(d.out, "    ✓ Imported successfully\n")

		outcome.Status = domain.OutcomeImported
		return outcome
	}

	summary.Found++
	fmt.Fprintf(d.out, "  ✓ Found: %s\n", existing.Title)
	fmt.Fprintf(d.out, "    Last modified: %s\n", valueOr(existing.MetadataModified, "Unknown"))

	if !d.opts.Force {
		changed, err := d.changedSince(ctx, canonical, existing.MetadataModified)
		if err != nil {
			return fail(err)
		}

		if !changed {
			fmt.Fprintf(d.out, "    → No update needed\n")
			outcome.Status = domain.OutcomeUnchanged
			return outcome
		}
	}

	fmt.Fprintf(d.out, "    → Updating...\n")

	if _, err = d.importer.Import(ctx, canonical, targetOrg, nil); err != nil {
		return fail(err)
	}

	summary.Updated++
	fmt.Fprintf(d.out, "    ✓ Updated successfully\n")

	outcome.Status = domain.OutcomeUpdated
	return outcome
}

// changedSince reports whether the registry copy is strictly newer than the
// catalog copy. Missing or unparsable timestamps mean no change.
func (d *Driver) changedSince(ctx context.Context, canonical, storeModified string) (bool, error) {
	registryModified, ok, err := d.importer.LastModified(ctx, canonical)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	fmt.Fprintf(d.out, "    Registry updated: %s\n", registryModified.Format(time.RFC3339))

	stored, ok := ParseTimestamp(storeModified)
	if !ok {
		return false, nil
	}

	return registryModified.After(stored), nil
}

func (d *Driver) resumePosition(log zerolog.Logger, count int) int {
	if !d.opts.Resume || d.journal == nil || d.opts.ResumeKey == "" {
		return 0
	}

	index, found, err := d.journal.Progress(d.opts.ResumeKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read progress, starting from the beginning")
		return 0
	}

	if !found || index < 0 || index >= count {
		return 0
	}

	return index
}

func (d *Driver) saveProgress(log zerolog.Logger, index int) {
	if d.journal == nil || d.opts.ResumeKey == "" {
		return
	}

	if err := d.journal.SaveProgress(d.opts.ResumeKey, index); err != nil {
		log.Warn().Err(err).Msg("failed to save progress")
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses store and registry timestamps. Timestamps without a
// zone are taken to be UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func valueOr(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
