// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

// Command importer loads the tuning catalog into PostgreSQL.
//
// # Usage
//
//	importer -data ./exports        # import CSV files from a directory
//	importer -seed                  # insert the built-in demo catalog
//
// Both modes run migrations first and flush the configuration cache after
// writing, so the API never serves stale assemblies.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lukavetter/torqline/internal/platform/config"
	"github.com/lukavetter/torqline/internal/platform/migration"
	pgstore "github.com/lukavetter/torqline/internal/platform/postgres"
	redisstore "github.com/lukavetter/torqline/internal/platform/redis"
	"github.com/lukavetter/torqline/internal/provision"
	"github.com/lukavetter/torqline/internal/tuning"
)

func main() {
	dataDir := flag.String("data", "", "directory containing the catalog CSV exports")
	seed := flag.Bool("seed", false, "insert the built-in demo catalog instead of importing")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", "torqline-importer"))

	if *dataDir == "" && !*seed {
		log.Error("nothing to do: pass -data <dir> or -seed")
		os.Exit(2)
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	if *seed {
		must(log, provision.Seed(ctx, pool, log), "seed demo catalog")
	}
	if *dataDir != "" {
		importer := provision.NewImporter(pool, log)
		must(log, importer.ImportAll(ctx, *dataDir), "import catalog")
	}

	// Cache flush is best-effort: an unreachable Redis only means cached
	// assemblies age out on their own TTL.
	rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Warn("redis unavailable, skipping cache flush", slog.Any("error", err))
	} else {
		defer rdb.Close()
		if err := tuning.Flush(ctx, rdb); err != nil {
			log.Warn("cache flush failed", slog.Any("error", err))
		} else {
			log.Info("configuration_cache_flushed")
		}
	}

	log.Info("import_complete")
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("importer failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
