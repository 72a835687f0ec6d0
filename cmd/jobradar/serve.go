package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingkam/jobradar/internal/db"
	"github.com/wingkam/jobradar/internal/scheduler"
	"github.com/wingkam/jobradar/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveNoCron     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the annotated job corpus, plus the background crawler that keeps it fresh.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoCron, "no-cron", false, "Disable the periodic crawl scheduler")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
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

	pipelines := buildPipelines(cfg, database, log)

	if !serveNoCron {
		sched := scheduler.New(pipelines, database, cfg.Keywords, cfg.SearchPages,
			cfg.ScrapeInterval, cfg.RetentionDays, log)
		if err := sched.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	ingesters := make([]server.Ingester, 0, len(pipelines))
	for _, p := range pipelines {
		ingesters = append(ingesters, p)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		RedisURL:    cfg.RedisURL,
		Keywords:    cfg.Keywords,
		SearchPages: cfg.SearchPages,
	}, database, ingesters, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
