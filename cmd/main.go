package main

import (
	"context"
	"os"
	"sankyaan/internal/domain"
	"sankyaan/internal/logger"
	"sankyaan/internal/util"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sankyaan",
	Short:        "fund quality score batch pipelines",
	SilenceUsage: true,
}

var recomputeScoresCmd = &cobra.Command{
	Use:   "recompute-scores",
	Short: "recompute fund-level quality scores from security-level holdings",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := initializeDependencies()
		if err != nil {
			return err
		}
		defer closeDependencies(handler)

		profile, endProfile := domain.NewProfile()
		defer endProfile()
		ctx := context.WithValue(cmd.Context(), domain.ContextProfileKey, profile)

		report, err := handler.AggregationService.RecomputeScores(ctx)
		if err != nil {
			return err
		}

		util.Pprint(report)
		logger.Info("recompute finished: %d rows written in %dms", report.RowsWritten, report.ElapsedMs)
		return nil
	},
}

var enrichManagersCmd = &cobra.Command{
	Use:   "enrich-managers",
	Short: "discover fund manager names and inception dates via external lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := initializeDependencies()
		if err != nil {
			return err
		}
		defer closeDependencies(handler)

		profile, endProfile := domain.NewProfile()
		defer endProfile()
		ctx := context.WithValue(cmd.Context(), domain.ContextProfileKey, profile)

		report, err := handler.EnrichmentService.EnrichManagers(ctx)
		if err != nil {
			return err
		}

		util.Pprint(report)
		logger.Info("enrichment finished: %d updated / %d skipped / %d not found in %dms",
			report.Updated, report.Skipped, report.NotFound, report.ElapsedMs)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(recomputeScoresCmd)
	rootCmd.AddCommand(enrichManagersCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
