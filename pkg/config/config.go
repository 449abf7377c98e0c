package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
)

type Config struct {
	GoEnv        string
	StoreType    string
	DataDir      string
	DbPath       string
	LogDir       string
	HttpHostPort string
	GrpcHostPort string
	DefaultRate  float64
	DefaultBurst int
	NotifyURL    string
}

var defaults = map[string]string{
	common.EnvKeyGoEnv:        "development",
	common.EnvKeyStoreType:    common.StoreTypeXlsx,
	common.EnvKeyDataDir:      "data",
	common.EnvKeyDbPath:       "battery.db",
	common.EnvKeyLogDir:       "logs",
	common.EnvKeyHttpHostPort: ":1080",
	common.EnvKeyGrpcHostPort: "",
	common.EnvKeyDefaultRate:  "10",
	common.EnvKeyDefaultBurst: "20",
	common.EnvKeyNotifyURL:    "",
}

var configSchema = z.Struct(z.Shape{
	"StoreType": z.String().Required().OneOf(
		[]string{common.StoreTypeXlsx, common.StoreTypeSqlite, common.StoreTypeMemory},
	),
	"HttpHostPort": z.String().Required(),
	"DefaultRate":  z.Float64().GT(0),
	"DefaultBurst": z.Int().GT(0),
})

func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. Environment values win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		GoEnv:        strings.TrimSpace(v.GetString(common.EnvKeyGoEnv)),
		StoreType:    strings.ToLower(strings.TrimSpace(v.GetString(common.EnvKeyStoreType))),
		DataDir:      strings.TrimSpace(v.GetString(common.EnvKeyDataDir)),
		DbPath:       strings.TrimSpace(v.GetString(common.EnvKeyDbPath)),
		LogDir:       strings.TrimSpace(v.GetString(common.EnvKeyLogDir)),
		HttpHostPort: strings.TrimSpace(v.GetString(common.EnvKeyHttpHostPort)),
		GrpcHostPort: strings.TrimSpace(v.GetString(common.EnvKeyGrpcHostPort)),
		NotifyURL:    strings.TrimSpace(v.GetString(common.EnvKeyNotifyURL)),
	}

	var err error
	if cfg.DefaultRate, err = strconv.ParseFloat(strings.TrimSpace(v.GetString(common.EnvKeyDefaultRate)), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", common.EnvKeyDefaultRate, err)
	}
	if cfg.DefaultBurst, err = strconv.Atoi(strings.TrimSpace(v.GetString(common.EnvKeyDefaultBurst))); err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", common.EnvKeyDefaultBurst, err)
	}

	if issues := configSchema.Validate(cfg); len(issues) > 0 {
		return nil, fmt.Errorf("invalid configuration: %v", issues)
	}
	return cfg, nil
}
