// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/carterperez-dev/petal-commerce/internal/config"
	"github.com/carterperez-dev/petal-commerce/internal/core"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrationsDir := flag.String(
		"dir",
		"migrations",
		"directory with migration files",
	)
	flag.Parse()

	if err := run(*configPath, *migrationsDir, flag.Args()); err != nil {
		slog.Error("migration error", "error", err)
		os.Exit(1)
	}
}

func run(configPath, migrationsDir string, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("database close error", "error", closeErr)
		}
	}()

	command := "up"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.RunContext(
		ctx,
		command,
		db.DB.DB,
		migrationsDir,
		args...,
	); err != nil {
		return err
	}

	slog.Info("migration complete", "command", command)
	return nil
}
