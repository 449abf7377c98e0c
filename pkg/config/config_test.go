package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
)

func clearEnv(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		GoEnv:        "development",
		StoreType:    common.StoreTypeXlsx,
		DataDir:      "data",
		DbPath:       "battery.db",
		LogDir:       "logs",
		HttpHostPort: ":1080",
		DefaultRate:  10,
		DefaultBurst: 20,
	}, cfg)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"BATTERY_STORE_TYPE=sqlite\nBATTERY_DB_PATH=/tmp/b.db\nBATTERY_DEFAULT_RATE=2.5\nBATTERY_GRPC_HOST_PORT=:1081\n",
	), 0o644))

	// the process environment takes precedence over the file
	t.Setenv(common.EnvKeyDefaultBurst, "7")
	t.Setenv(common.EnvKeyDbPath, "/var/lib/battery.db")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, common.StoreTypeSqlite, cfg.StoreType)
	assert.Equal(t, "/var/lib/battery.db", cfg.DbPath)
	assert.Equal(t, 2.5, cfg.DefaultRate)
	assert.Equal(t, 7, cfg.DefaultBurst)
	assert.Equal(t, ":1081", cfg.GrpcHostPort)
	assert.False(t, cfg.IsProduction())
}

func TestLoadLogSettingsFromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GO_ENV=production\nBATTERY_LOG_DIR=/var/log/battery\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/battery", cfg.LogDir)
	assert.True(t, cfg.IsProduction())
}

func TestLoadRejectsBadValues(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	cases := map[string]string{
		common.EnvKeyStoreType:    "postgres",
		common.EnvKeyDefaultRate:  "fast",
		common.EnvKeyDefaultBurst: "1.5",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load(missing)
			assert.Error(t, err)
		})
	}

	t.Run("non-positive rate", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(common.EnvKeyDefaultRate, "0")

		_, err := Load(missing)
		assert.Error(t, err)
	})
}
