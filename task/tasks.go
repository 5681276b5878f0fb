package task

import (
	"context"
	"log/slog"

	"github.com/angas/elspot-go/config"
	"github.com/angas/elspot-go/database"
	"github.com/angas/elspot-go/feed"
	"github.com/robfig/cron/v3"
)

type Tasks struct {
	cron            *cron.Cron
	cnfg            *config.AppConfig
	PriceTask       func()
	MaintenanceTask func()
}

func NewTasks(db *database.Database, providers []feed.Provider, cnfg *config.AppConfig) *Tasks {
	logger := slog.Default().With("module", "tasks")
	return &Tasks{
		cron:            cron.New(),
		cnfg:            cnfg,
		PriceTask:       NewPriceTask(logger.With(slog.String("task", "day_ahead_price")), db, providers, cnfg.Feed),
		MaintenanceTask: NewMaintenanceTask(logger.With(slog.String("task", "maintenance")), db, cnfg),
	}
}

func (t *Tasks) Run() {
	_, err := t.cron.AddFunc(t.cnfg.Feed.GetRunAt(), t.PriceTask)
	if err != nil {
		panic(err)
	}
	_, err = t.cron.AddFunc("30 2 * * *", t.MaintenanceTask)
	if err != nil {
		panic(err)
	}
	t.cron.Start()
}

func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
