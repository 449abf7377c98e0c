// Package bootstrap builds the inventory and its collaborators from a
// loaded configuration. Both binaries start here.
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/config"
	"liyu1981.xyz/battery-tracking-service/pkg/db"
	"liyu1981.xyz/battery-tracking-service/pkg/inventory"
	"liyu1981.xyz/battery-tracking-service/pkg/metrics"
	"liyu1981.xyz/battery-tracking-service/pkg/notify"
	"liyu1981.xyz/battery-tracking-service/pkg/sheet"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

type App struct {
	Config    *config.Config
	Store     tabular.Store
	Inventory *inventory.Inventory
	Notifier  *notify.Notifier
	Metrics   *metrics.Metrics

	closeStore func() error
}

func OpenStore(cfg *config.Config) (tabular.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreType {
	case common.StoreTypeXlsx:
		return sheet.New(cfg.DataDir), noop, nil
	case common.StoreTypeSqlite:
		instance, err := db.Open(db.UseSqliteDialector(cfg.DbPath))
		if err != nil {
			return nil, nil, err
		}
		return instance, instance.Close, nil
	case common.StoreTypeMemory:
		return tabular.NewMemory(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown %s: %q", common.EnvKeyStoreType, cfg.StoreType)
	}
}

func New(cfg *config.Config) (*App, error) {
	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	inventoryCore, err := inventory.New(store)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	m, err := metrics.New(inventoryCore.Battery)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	common.GetLogger().Info("Inventory ready",
		zap.String("store_type", cfg.StoreType),
		zap.Bool("notify_simulated", cfg.NotifyURL == ""))

	return &App{
		Config:     cfg,
		Store:      store,
		Inventory:  inventoryCore,
		Notifier:   notify.New(cfg.NotifyURL),
		Metrics:    m,
		closeStore: closeStore,
	}, nil
}

// NewRateLimiterStore gives each transport its own limiter store, so http
// and grpc requests are counted separately.
func (a *App) NewRateLimiterStore() *inventory.RateLimiterStore {
	return inventory.NewRateLimiterStore(rate.Limit(a.Config.DefaultRate), a.Config.DefaultBurst)
}

func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
