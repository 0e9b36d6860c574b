package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/devnet-explorer/internal/prefs"
)

type config struct {
	PrefsDB string `long:"prefs-db" env:"MIGRATIONS_PREFS_DB" description:"SQLite file holding field preferences" required:"true"`
	Down    bool   `long:"down" env:"MIGRATIONS_DOWN" description:"revert every migration instead of applying them"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
	logger.Info("migrations applied successfully", zap.String("path", cfg.PrefsDB), zap.Bool("down", cfg.Down))
}

func runMigrations(ctx context.Context, cfg config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db, err := prefs.OpenDB(ctx, cfg.PrefsDB)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if cfg.Down {
		return prefs.MigrateDown(db)
	}
	return prefs.MigrateUp(db)
}
