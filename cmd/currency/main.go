package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"currency-console/internal"
	"currency-console/internal/console"
	"currency-console/internal/fixer"
	"currency-console/internal/postgresql"
	"currency-console/internal/repository/migrations"
	"currency-console/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stdlog.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	sessionID := uuid.New()

	// fetcher
	client := fixer.New(cfg.FixerKey, cfg.HTTPTimeout)
	client.BaseURL = cfg.FixerURL
	fetcher := fixer.NewLoggingFetcher(log.With(logger, "component", "fixer"), client)

	sessionOpts := []session.Option{
		session.WithID(sessionID),
		session.WithLogger(logger),
	}
	consoleOpts := []console.Option{
		console.WithLogger(logger),
		console.WithColor(!cfg.NoColor),
	}

	// optional storage
	if cfg.DatabaseURL != "" {
		pool, err := openStorage(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		sessionOpts = append(sessionOpts, session.WithArchive(postgresql.NewSnapshotArchive(pool)))
		audit := internal.NewStorageAuditLogger(postgresql.NewCommandLogStorage(pool))
		consoleOpts = append(consoleOpts, console.WithAuditLogger(audit))
	}

	s := session.New(fetcher, sessionOpts...)
	c := console.New(s, console.NewTerminalPrompter(), os.Stdout, consoleOpts...)

	_ = level.Info(logger).Log("msg", "session started", "session", sessionID)
	return c.Run(ctx)
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	opt, err := levelOption(lvl)
	if err != nil {
		opt = level.AllowWarn()
	}
	return level.NewFilter(logger, opt)
}

func openStorage(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	dbCtx, cancelDB := context.WithTimeout(ctx, 5*time.Second)
	defer cancelDB()

	pool, err := pgxpool.New(dbCtx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migrations.New(pool).Setup(dbCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure tables: %w", err)
	}
	return pool, nil
}
