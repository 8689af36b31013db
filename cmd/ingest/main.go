// Command ingest bulk-imports MegaMek MTF files into the Postgres
// design store.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/catalog"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/config"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/db"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/ingestion"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/mechlab.yaml", "path to configuration file")
	dir := flag.String("dir", ".", "path to mekfiles directory")
	dryRun := flag.Bool("dry-run", false, "parse only, do not write to the database")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	cat := openCatalog(logger, cfg.Catalog)

	var files []string
	err = filepath.Walk(*dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".mtf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		logger.Fatal("walking directory", zap.String("dir", *dir), zap.Error(err))
	}
	logger.Info("found mtf files", zap.Int("count", len(files)))

	ctx := context.Background()
	var store *db.Store
	if !*dryRun {
		store, err = db.Connect(ctx, cfg.Database.DSN())
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer store.Close()
	}

	var parsed, failed, saved int
	for _, path := range files {
		file, err := ingestion.ParseFile(path)
		if err != nil {
			failed++
			logger.Warn("parse failed", zap.String("file", filepath.Base(path)), zap.Error(err))
			continue
		}
		parsed++

		unit, unknown := file.ToUnit(cat)
		if len(unknown) > 0 {
			logger.Debug("unknown equipment",
				zap.String("unit", unit.FullName()),
				zap.Strings("names", unknown))
		}

		if store != nil {
			if _, err := store.SaveDesign(ctx, unit); err != nil {
				logger.Warn("save failed", zap.String("unit", unit.FullName()), zap.Error(err))
				continue
			}
			saved++
		}
	}

	logger.Info("ingest complete",
		zap.Int("parsed", parsed),
		zap.Int("failed", failed),
		zap.Int("saved", saved),
	)
}

func openCatalog(logger *zap.Logger, cfg config.CatalogConfig) catalog.Catalog {
	if cfg.SQLitePath == "" {
		return catalog.Builtin()
	}
	cat, err := catalog.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		logger.Fatal("opening catalog", zap.String("path", cfg.SQLitePath), zap.Error(err))
	}
	return cat
}
