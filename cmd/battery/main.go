package main

import (
	"fmt"
	"os"

	"liyu1981.xyz/battery-tracking-service/pkg/cli"
	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/config"
)

func main() {
	ctx := cli.NewContext(func() (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		common.SetFileOnlyLogger(cfg.LogDir)
		return cfg, nil
	})

	err := cli.RootCommand(ctx).Execute()
	if closeErr := ctx.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
