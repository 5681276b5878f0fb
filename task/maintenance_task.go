package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/angas/elspot-go/config"
	"github.com/angas/elspot-go/database"
)

func NewMaintenanceTask(logger *slog.Logger, db *database.Database, cnfg *config.AppConfig) func() {
	return func() {
		logger.Debug("running maintenance task...")

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := db.Purge(ctx, cnfg.Database.GetRetentionDays()); err != nil {
			logger.Error("maintenance task error", slog.Any("error", err))
			return
		}

		logger.Info("maintenance task done")
	}
}
