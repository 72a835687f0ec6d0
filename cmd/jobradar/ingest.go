package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wingkam/jobradar/internal/db"
	"github.com/wingkam/jobradar/internal/observability"
)

var (
	ingestConfigPath string
	ingestKeywords   []string
	ingestPages      int
	ingestSkipSweep  bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one crawl cycle and exit",
	Long:  `Crawl every configured board once, annotate and upsert the postings, then mark stale postings expired.`,
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config.json file")
	ingestCmd.Flags().StringSliceVarP(&ingestKeywords, "keyword", "k", nil, "Search keyword (repeatable, overrides config)")
	ingestCmd.Flags().IntVar(&ingestPages, "pages", 0, "Listing pages per keyword (overrides config)")
	ingestCmd.Flags().BoolVar(&ingestSkipSweep, "skip-sweep", false, "Do not mark missing postings as expired")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(ingestConfigPath)
	if err != nil {
		return err
	}
	if len(ingestKeywords) > 0 {
		cfg.Keywords = ingestKeywords
	}
	if cmd.Flags().Changed("pages") {
		cfg.SearchPages = ingestPages
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, p := range buildPipelines(cfg, database, log) {
		result, err := p.Run(ctx, cfg.Keywords, cfg.SearchPages)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		if !ingestSkipSweep && result.Fetched > 0 {
			if _, err := p.Sweep(ctx, result.LiveIDs); err != nil {
				return fmt.Errorf("staleness sweep failed: %w", err)
			}
		}
		printer.PrintIngestResult(p.Source(), result.Fetched, result.Created, result.Updated, result.Skipped)
	}

	return nil
}
