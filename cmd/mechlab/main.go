// Command mechlab loads a unit design from an MTF file or the design
// store, optionally re-packs its critical slots, and runs the
// construction validator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/catalog"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/config"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/crits"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/db"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/ingestion"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/observability"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/validation"
)

func main() {
	configPath := flag.String("config", "configs/mechlab.yaml", "path to configuration file")
	mtfPath := flag.String("mtf", "", "path to the MTF file to load")
	designID := flag.Int("design", 0, "id of a stored design to load instead of an MTF file")
	op := flag.String("op", "validate", "operation: validate, compact, sort, or fill")
	flag.Parse()

	if *mtfPath == "" && *designID == 0 {
		fmt.Fprintln(os.Stderr, "usage: mechlab (-mtf <file> | -design <id>) [-op validate|compact|sort|fill]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	cat, err := openCatalog(cfg.Catalog)
	if err != nil {
		logger.Fatal("opening catalog", zap.Error(err))
	}

	var unit *models.Unit
	if *designID != 0 {
		unit = loadStoredDesign(logger, cfg, *designID)
	} else {
		unit = loadMTF(logger, cat, *mtfPath)
	}
	logger.Info("loaded unit",
		zap.String("name", unit.FullName()),
		zap.Int("tonnage", unit.Config.Tonnage),
		zap.String("engine", string(unit.Config.Engine)),
		zap.Int("mounts", len(unit.Mounts)),
	)

	switch *op {
	case "validate":
	case "compact":
		applyLayout(logger, unit, crits.Compact(unit.Mounts, unit.Config))
	case "sort":
		applyLayout(logger, unit, crits.Sort(unit.Mounts, unit.Config))
	case "fill":
		applyLayout(logger, unit, crits.Fill(unit.Mounts, unit.Config))
	default:
		logger.Fatal("unknown operation", zap.String("op", *op))
	}

	report := validation.Validate(unit.Config, unit.Mounts)
	printReport(unit, report)
	if !report.Valid {
		os.Exit(1)
	}
}

func loadMTF(logger *zap.Logger, cat catalog.Catalog, path string) *models.Unit {
	file, err := ingestion.ParseFile(path)
	if err != nil {
		logger.Fatal("parsing mtf", zap.String("path", path), zap.Error(err))
	}
	unit, unknown := file.ToUnit(cat)
	if len(unknown) > 0 {
		logger.Warn("unknown equipment names", zap.Strings("names", unknown))
	}
	return unit
}

func loadStoredDesign(logger *zap.Logger, cfg config.Config, id int) *models.Unit {
	ctx := context.Background()
	store, err := db.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer store.Close()

	unit, err := store.LoadDesign(ctx, id)
	if err != nil {
		logger.Fatal("loading design", zap.Int("id", id), zap.Error(err))
	}
	return unit
}

func openCatalog(cfg config.CatalogConfig) (catalog.Catalog, error) {
	if cfg.SQLitePath == "" {
		return catalog.Builtin(), nil
	}
	return catalog.OpenSQLite(cfg.SQLitePath)
}

func applyLayout(logger *zap.Logger, unit *models.Unit, res crits.Result) {
	if len(res.Dropped) > 0 {
		// topology and placement invariants have diverged
		logger.Fatal("layout dropped placed equipment", zap.Strings("ids", res.Dropped))
	}
	if len(res.Unassigned) > 0 {
		logger.Warn("equipment left unassigned", zap.Strings("ids", res.Unassigned))
	}
	unit.Mounts = res.Apply(unit.Mounts)
}

func printReport(unit *models.Unit, report validation.Report) {
	status := "VALID"
	if !report.Valid {
		status = "INVALID"
	}
	fmt.Printf("%s: %s\n", unit.FullName(), status)
	for _, res := range report.Results {
		for _, e := range res.Errors {
			fmt.Printf("  [%s] error: %s\n", res.Rule, e)
		}
		for _, w := range res.Warnings {
			fmt.Printf("  [%s] warning: %s\n", res.Rule, w)
		}
	}
}
