// Package cron runs the scheduled background jobs.
package cron

import (
	"salonkit/config"
	"salonkit/services/inventory"
	"salonkit/services/telemetry"
	"salonkit/utils"

	cron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartLowStockScheduler runs a daily sweep over the inventory and reports
// every product sitting at or below its reorder threshold. The schedule
// comes from config (daily at 9 AM by default).
func StartLowStockScheduler(invSvc inventory.InventoryService, sink telemetry.Sink) (*cron.Cron, error) {
	logger := utils.GetLogger()
	c := cron.New()

	schedule := config.AppConfig.LowStockSchedule
	if schedule == "" {
		schedule = "0 9 * * *"
	}

	_, err := c.AddFunc(schedule, func() {
		products, err := invSvc.GetLowStockProducts()
		if err != nil {
			logger.Error("Low stock sweep failed", zap.Error(err))
			sink.Report(telemetry.Error("lowStockSweep", err, nil))
			return
		}
		if len(products) == 0 {
			logger.Debug("Low stock sweep: all products above threshold")
			return
		}
		names := make([]string, 0, len(products))
		for _, p := range products {
			names = append(names, p.Name)
		}
		logger.Info("Low stock sweep",
			zap.Int("count", len(products)),
			zap.Strings("products", names))
		sink.Report(telemetry.Event{
			Type:    "low-stock-report",
			Message: "products at or below reorder threshold",
			Context: map[string]any{"count": len(products), "products": names},
		})
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Info("Low stock scheduler started", zap.String("schedule", schedule))
	return c, nil
}
