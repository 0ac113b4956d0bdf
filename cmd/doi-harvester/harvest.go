package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/obis/doi-harvester/internal/pkg/application/batch"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/doilist"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/repositories/journal"
	"github.com/spf13/cobra"
)

// interruptedStatus is the conventional exit code after SIGINT.
const interruptedStatus exitStatus = 130

var (
	harvestRegistry string
	harvestOrg      string
	harvestForce    bool
	harvestResume   bool
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Import or update every DOI listed in a registry file",
	Long: `Import or update every DOI listed in a registry file.

The registry file holds one DOI or DOI URL per line. Blank lines and lines
starting with # are ignored. DOIs missing from the catalog are imported, DOIs
already present are updated when the registry copy is newer.

Examples:
  doi-harvester harvest
  doi-harvester harvest --registry zenodo_dois.txt --org obis-community
  doi-harvester harvest --force
  doi-harvester harvest --resume`,
	Args: cobra.NoArgs,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().StringVar(&harvestRegistry, "registry", "", "DOI registry file (default: the configured whitelist)")
	harvestCmd.Flags().StringVar(&harvestOrg, "org", "", "Owner organization for imported datasets (default: the configured organization)")
	harvestCmd.Flags().BoolVar(&harvestForce, "force", false, "Update existing datasets without comparing timestamps")
	harvestCmd.Flags().BoolVar(&harvestResume, "resume", false, "Continue an interrupted harvest")
}

func runHarvest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetFromContext(ctx)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	registry := valueOr(harvestRegistry, cfg.Harvest.WhitelistPath)
	org := valueOr(harvestOrg, cfg.Harvest.DefaultOrg)

	dois, err := doilist.Load(registry)
	if err != nil {
		return err
	}

	j, err := journal.Open(cfg.Harvest.JournalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	resumeKey := "harvest:" + registry
	if abs, absErr := filepath.Abs(registry); absErr == nil {
		resumeKey = "harvest:" + abs
	}

	fmt.Fprintf(out, "Loaded %d DOIs from registry\n\n", len(dois))

	catalog := newCatalog(cfg)
	driver := batch.NewDriver(log, newImporter(ctx, cfg, catalog), j, out, batch.Options{
		Force:       harvestForce,
		Resume:      harvestResume,
		ResumeKey:   resumeKey,
		ResumeEvery: cfg.Harvest.ResumeEvery,
	})

	summary, err := driver.Run(ctx, dois, org)

	fmt.Fprintf(out, "\n%s", summary.String())

	if errors.Is(err, context.Canceled) {
		return interruptedStatus
	}
	if err != nil {
		return err
	}

	if code := summary.ExitCode(); code != 0 {
		return exitStatus(code)
	}

	return nil
}

func valueOr(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
