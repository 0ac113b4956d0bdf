package main

import (
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/obis/doi-harvester/internal/pkg/application/services/vocabularies"
	"github.com/spf13/cobra"
)

var initVocabulariesCmd = &cobra.Command{
	Use:   "init-vocabularies",
	Short: "Create the product type and thematic vocabularies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(ctx, true)
		if err != nil {
			return err
		}

		summary, err := vocabularies.Bootstrap(ctx, logging.GetFromContext(ctx), newCatalog(cfg), cmd.OutOrStdout(), vocabularies.Defaults)
		if err != nil {
			return err
		}

		if code := summary.ExitCode(); code != 0 {
			return exitStatus(code)
		}

		return nil
	},
}
