package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wingkam/jobradar/internal/db"
)

var (
	sweepConfigPath string
	sweepGraceDays  int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Purge jobs that stayed expired past the retention grace period",
	Long:  `Delete jobs that were marked expired longer ago than the retention grace period. Expired jobs inside the grace period stay queryable with include_expired=true.`,
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "Path to config.json file")
	sweepCmd.Flags().IntVar(&sweepGraceDays, "grace-days", 0, "Retention grace period in days (overrides config)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(sweepConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("grace-days") {
		cfg.RetentionDays = sweepGraceDays
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	purged, err := database.PurgeExpired(ctx, time.Duration(cfg.RetentionDays)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Purged %d expired job(s) older than %d days\n", purged, cfg.RetentionDays)
	return nil
}
