package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"twd-lookup/internal/config"
	"twd-lookup/internal/database"
	"twd-lookup/internal/episode"
	"twd-lookup/internal/format"
	"twd-lookup/internal/query"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Input errors have already been reported as an empty result
		if !query.IsInputError(err) {
			slog.Error("Lookup failed", "error", err)
		}
		os.Exit(1)
	}
}

// run answers a single request. The database is opened only after the request is valid
// and is closed before returning on every path.
func run(ctx context.Context, stdout, stderr io.Writer, req query.Request, dbPath string) error {
	if err := req.Validate(); err != nil {
		fmt.Fprintln(stdout, "[]")
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	setupLogging(stderr, cfg.LogLevel)

	table, err := episode.NewSeasonTable(cfg.SeasonEpisodes)
	if err != nil {
		return fmt.Errorf("failed to build season table: %w", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	svc := query.NewService(db, episode.NewResolver(table), cfg.AiredEpisodes)

	slog.Debug("Running query", "kind", req.Kind(), "mode", req.Mode.String(), "database", cfg.DatabasePath)

	view, err := buildView(ctx, svc, req)
	if errors.Is(err, query.ErrNoMatch) {
		fmt.Fprintln(stdout, "[]")
		return nil
	}
	if err != nil {
		return err
	}

	return format.Render(ctx, stdout, req.Mode, view)
}

// buildView dispatches the request to its query builder
func buildView(ctx context.Context, svc *query.Service, req query.Request) (format.View, error) {
	switch req.Kind() {
	case query.KindCharacter:
		res, err := svc.Character(ctx, *req.Character)
		if err != nil {
			return nil, err
		}
		return format.Character(res), nil
	case query.KindSeason:
		res, err := svc.Season(ctx, *req.Season)
		if err != nil {
			return nil, err
		}
		return format.Season(*req.Season, res), nil
	case query.KindEpisode:
		res, err := svc.Episode(ctx, *req.Episode)
		if err != nil {
			return nil, err
		}
		return format.Episode(*req.Episode, res), nil
	default:
		return nil, query.ErrEmptyQuery
	}
}

// setupLogging configures structured logging based on the log level.
// Logs go to w so that stdout carries only the query result.
func setupLogging(w io.Writer, level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	handler := slog.NewTextHandler(w, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
