package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcjones/flightcircle-statistics/internal/config"
	"github.com/jcjones/flightcircle-statistics/internal/datasource"
	"github.com/jcjones/flightcircle-statistics/internal/report"
	"github.com/jcjones/flightcircle-statistics/internal/store"
)

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// run executes the full pipeline once: load, aggregate, render.
func run(inputPath string, cfg *config.Config, jsonPath string) error {
	events, err := datasource.Load(inputPath, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}
	slog.Info("Loaded events", "path", inputPath, "count", len(events))

	rpt, err := report.Generate(events)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := rpt.Render(os.Stdout); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", jsonPath, err)
		}
		defer f.Close()

		if err := rpt.WriteJSON(f); err != nil {
			return fmt.Errorf("failed to write %s: %w", jsonPath, err)
		}
		slog.Info("Wrote JSON report", "path", jsonPath)
	}

	return nil
}

// runImport loads events from the input file and writes them into a
// SQLite event store for faster reloading.
func runImport(inputPath string, cfg *config.Config, dbPath string) error {
	events, err := datasource.Load(inputPath, cfg.Sheet)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.InsertBatch(events); err != nil {
		return fmt.Errorf("failed to import events: %w", err)
	}

	count, err := db.Count()
	if err != nil {
		return err
	}
	slog.Info("Imported events", "path", dbPath, "imported", len(events), "total", count)
	return nil
}

func main() {
	configPath := flag.String("config", "", "Path to config file (YAML)")
	jsonPath := flag.String("json", "", "Also write the report as JSON to this file")
	importPath := flag.String("import", "", "Import events into a SQLite store at this path and exit")
	watch := flag.Bool("watch", false, "Stay resident and regenerate the report when the input changes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <events.csv|events.xlsx|events.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	if *configPath != "" {
		os.Setenv("FLEETSTATS_CONFIG_PATH", *configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		// Use basic logging for config errors since logger isn't initialized yet
		basicLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		basicLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if *importPath != "" {
		if err := runImport(inputPath, cfg, *importPath); err != nil {
			slog.Error("Import failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(inputPath, cfg, *jsonPath); err != nil {
		slog.Error("Report generation failed", "error", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	debounce := time.Duration(cfg.WatchDebounceMS) * time.Millisecond
	monitor, err := datasource.NewMonitor(inputPath, debounce)
	if err != nil {
		slog.Error("Failed to start watch mode", "error", err)
		os.Exit(1)
	}
	defer monitor.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		slog.Info("Received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	slog.Info("Watching for changes", "path", inputPath, "debounce", debounce.String())
	err = monitor.Watch(ctx, func(path string) {
		if err := run(path, cfg, *jsonPath); err != nil {
			slog.Error("Report generation failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("Watcher stopped", "error", err)
		os.Exit(1)
	}
}
