package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/samenwerkt-wbd/members-backend/config"
	"github.com/samenwerkt-wbd/members-backend/export"
	"github.com/samenwerkt-wbd/members-backend/mailer"
	"github.com/samenwerkt-wbd/members-backend/storage"
)

func main() {
	table := flag.String("table", export.TableMemberships, "table to export (memberships or cafe)")
	settingsPath := flag.String("config", "export.yaml", "path to the export settings file")
	flag.Parse()

	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	config.SetupLogging(
		config.GetEnvOrDefault("LOG_FORMAT", "text"),
		config.GetEnvOrDefault("LOG_LEVEL", "info"),
	)

	// Tag every log line of this run so overlapping or retried runs can
	// be told apart in aggregated logs.
	runID := uuid.New().String()
	slog.SetDefault(slog.Default().With("runId", runID))
	slog.Info("Export run starting", "table", *table)

	cfg := config.Load()

	settings, err := config.LoadExportSettings(*settingsPath)
	if err != nil {
		slog.Error("Failed to load export settings", "path", *settingsPath, "error", err)
		os.Exit(1)
	}
	db, err := storage.Connect(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	mailClient, err := mailer.NewClient(&cfg.Mail)
	if err != nil {
		slog.Error("Failed to configure mail client", "error", err)
		os.Exit(1)
	}

	exporter := export.NewExporter(storage.NewSubmissionStore(db), mailClient, settings)
	if err := exporter.Run(*table); err != nil {
		slog.Error("Export failed", "table", *table, "error", err)
		os.Exit(1)
	}
}
