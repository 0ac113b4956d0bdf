package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/obis"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/oceanexpert"
	"github.com/obis/doi-harvester/internal/pkg/application/services/institutions"
	"github.com/obis/doi-harvester/internal/pkg/application/services/organisations"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/repositories/journal"
	"github.com/spf13/cobra"
)

var syncNodesCmd = &cobra.Command{
	Use:   "sync-nodes",
	Short: "Create or update a catalog organization for every OBIS node",
	Args:  cobra.NoArgs,
	RunE:  runSyncNodes,
}

var syncInstitutesCmd = &cobra.Command{
	Use:   "sync-institutes",
	Short: "Create or update a catalog group for every OBIS institute",
	Long: `Create or update a catalog group for every OBIS institute that has an
Ocean Expert id. Each institute is enriched with its Ocean Expert record.

Progress is saved every ten institutes and when interrupted, and an
interrupted sync continues where it stopped when run again.`,
	Args: cobra.NoArgs,
	RunE: runSyncInstitutes,
}

func runSyncNodes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetFromContext(ctx)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	registry := obis.NewClient(log, cfg.Registries.OBIS.APIURL, cfg.Registries.OBIS.Timeout)
	svc := organisations.NewNodeSync(log, registry, newCatalog(cfg), out)

	fmt.Fprintf(out, "Starting OBIS node synchronization...\n\n")

	summary, err := svc.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSynchronization complete!\n%s", summary.String())

	if code := summary.ExitCode(); code != 0 {
		return exitStatus(code)
	}

	return nil
}

func runSyncInstitutes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetFromContext(ctx)
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	j, err := journal.Open(cfg.Harvest.JournalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	svc := institutions.NewInstituteSync(
		log,
		obis.NewClient(log, cfg.Registries.OBIS.APIURL, cfg.Registries.OBIS.Timeout),
		oceanexpert.NewClient(log, cfg.Registries.OceanExpert.APIURL, cfg.Registries.OceanExpert.Timeout),
		newCatalog(cfg),
		j,
		out,
		institutions.Options{
			Delay:       cfg.Registries.OceanExpert.Delay,
			ResumeEvery: cfg.Harvest.ResumeEvery,
		},
	)

	fmt.Fprintf(out, "Starting OBIS institutions synchronization with Ocean Expert...\n\n")

	summary, err := svc.Sync(ctx)

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
