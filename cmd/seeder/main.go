// cmd/seeder/main.go
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/unclebandit/storefront-backend/internal/config"
	"github.com/unclebandit/storefront-backend/internal/db"
	"github.com/unclebandit/storefront-backend/internal/logger"
)

// seedFiles run in order: the schema first, then the sample rows.
var seedFiles = []string{
	"schema.sql",
	"data.sql",
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Creates the cliente and produto tables when missing and loads sample rows.
// Meant for local databases only.
func main() {
	dir := flag.String("dir", "seed", "directory holding the seed files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.Log.Level, cfg.App.Env, "seeder")

	database, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer database.Close()

	if err := seed(context.Background(), database, *dir, log); err != nil {
		log.Fatal().Err(err).Str("sqlstate", db.SQLState(err)).Msg("seeding failed")
	}

	log.Info().Msg("database seeding completed successfully")
}

// seed executes every file of seedFiles found in dir, stopping at the first
// failure.
func seed(ctx context.Context, database execer, dir string, log zerolog.Logger) error {
	for _, file := range seedFiles {
		path := filepath.Join(dir, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		if _, err := database.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("execute %s: %w", path, err)
		}
		log.Info().Str("file", path).Msg("seeded")
	}
	return nil
}
