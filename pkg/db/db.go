package db

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
)

type DB struct {
	Conn *gorm.DB
}

// Open connects and migrates the schema/row tables. Unlike a process wide
// singleton every caller gets its own handle, so tests using distinct memory
// dialectors never see each other's tables.
func Open(dialector gorm.Dialector) (*DB, error) {
	var logger = common.GetLoggerWith(common.LoggerNameTabularStore)

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	instance := &DB{Conn: conn}

	if err := instance.Conn.AutoMigrate(&TableSchema{}, &TableRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
	}

	return instance, nil
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteDialector(dbPath string) gorm.Dialector {
	if dbPath == "" {
		var found bool
		if dbPath, found = os.LookupEnv(common.EnvKeyDbPath); !found {
			dbPath = "battery.db"
		}
	}
	return sqlite.Open(dbPath)
}

// UseMemorySqliteDialector names each in-memory database so that the pool's
// connections share it while separate stores stay isolated.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}
