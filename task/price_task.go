package task

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/angas/elspot-go/config"
	"github.com/angas/elspot-go/database"
	"github.com/angas/elspot-go/elspot"
	"github.com/angas/elspot-go/feed"
	"github.com/angas/elspot-go/regions"
)

func NewPriceTask(logger *slog.Logger, db *database.Database, providers []feed.Provider, cnfg config.AppConfigFeed) func() {
	if len(providers) == 0 {
		panic("no price feed providers")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if needImmediatePriceUpdate(ctx, db, cnfg) {
		logger.Info("need an immediate update of day-ahead prices")
		runPriceTask(logger, db, providers, cnfg)
	} else {
		logger.Debug("no need for immediate update of day-ahead prices")
	}

	return func() { runPriceTask(logger, db, providers, cnfg) }
}

func runPriceTask(logger *slog.Logger, db *database.Database, providers []feed.Provider, cnfg config.AppConfigFeed) {
	logger.Debug("running day-ahead price task...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var doc *elspot.Document
	for _, provider := range providers {
		d, err := provider.FetchDocument(ctx)
		if err != nil {
			logger.Error("price task error, fetching document", slog.Any("error", err))
			continue
		}
		doc = d
		break
	}
	if doc == nil {
		logger.Error("price task error, no document fetched")
		return
	}

	targets := cnfg.Regions
	if len(targets) == 0 {
		targets = doc.Regions()
	}

	var rows []database.DayAheadPriceRow
	for _, region := range targets {
		prices, err := doc.PricesForRegion(region)
		if err != nil {
			// In bulk extraction a region missing from the feed is skipped,
			// everything else signals a corrupt document.
			if errors.Is(err, elspot.ErrRegionNotFound) {
				logger.Warn("region not in feed, skipping", slog.String("region", region))
				continue
			}
			logger.Error("price task error, extracting prices",
				slog.String("region", region), slog.Any("error", err))
			return
		}
		for _, p := range prices {
			rows = append(rows, database.RowFromPrice(p))
		}
	}

	if len(rows) == 0 {
		logger.Error("price task error, no prices extracted")
		return
	}

	if err := db.SaveDayAheadPrices(ctx, rows); err != nil {
		logger.Error("price task error", slog.Any("error", err))
		return
	}

	logger.Info("day-ahead price task done",
		slog.String("date", doc.Date().Format("2006-01-02")),
		slog.Int("noOfPricesSaved", len(rows)))
}

func needImmediatePriceUpdate(ctx context.Context, db *database.Database, cnfg config.AppConfigFeed) bool {
	region := regions.System
	if len(cnfg.Regions) > 0 {
		region = cnfg.Regions[0]
	}
	if _, err := db.GetDayAheadPriceAt(ctx, region, time.Now()); err != nil {
		return true
	}
	return false
}
