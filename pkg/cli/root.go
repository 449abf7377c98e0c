package cli

import (
	"github.com/spf13/cobra"

	"liyu1981.xyz/battery-tracking-service/pkg/bootstrap"
	"liyu1981.xyz/battery-tracking-service/pkg/config"
)

// Context opens the app on first use, so help and flag errors never touch
// the store.
type Context struct {
	LoadConfig func() (*config.Config, error)

	storeType string
	dataDir   string
	dbPath    string

	app *bootstrap.App
}

func NewContext(load func() (*config.Config, error)) *Context {
	return &Context{LoadConfig: load}
}

func (c *Context) App() (*bootstrap.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}
	if c.storeType != "" {
		cfg.StoreType = c.storeType
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}
	if c.dbPath != "" {
		cfg.DbPath = c.dbPath
	}

	app, err := bootstrap.New(cfg)
	if err != nil {
		return nil, err
	}
	c.app = app
	return app, nil
}

func (c *Context) Close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// RootCommand creates and returns the root command
func RootCommand(ctx *Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "battery",
		Short:         "Track batteries, voltage checks and stakeholder handover",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&ctx.storeType, "store", "", "Store type: xlsx, sqlite or memory (overrides BATTERY_STORE_TYPE)")
	rootCmd.PersistentFlags().StringVar(&ctx.dataDir, "data-dir", "", "Workbook directory for the xlsx store (overrides BATTERY_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&ctx.dbPath, "db", "", "Database file for the sqlite store (overrides BATTERY_DB_PATH)")

	rootCmd.AddCommand(
		scanCommand(ctx),
		addCommand(ctx),
		updateVoltageCommand(ctx),
		handoverCommand(ctx),
		deleteCommand(ctx),
		listCommand(ctx),
		checksCommand(ctx),
		dashboardCommand(ctx),
		exportCommand(ctx),
		notifyCommand(ctx),
		stakeholderCommand(ctx),
	)

	return rootCmd
}
