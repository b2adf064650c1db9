package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"ariga.io/atlas/sql/migrate"
)

// migrate applies the versioned SQL files in migrations/ with the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, *dir, *bin, cfg.DB.BuildDSN(), logger); err != nil {
		logger.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

// checkDir refuses a migration directory whose atlas.sum no longer matches its files.
func checkDir(dir string) error {
	local, err := migrate.NewLocalDir(dir)
	if err != nil {
		return err
	}
	return migrate.Validate(local)
}

func run(ctx context.Context, dir, bin, dsn string, logger *slog.Logger) error {
	if err := checkDir(dir); err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dsn})
	if err != nil {
		return err
	}

	logger.Info("migrations applied",
		"count", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
