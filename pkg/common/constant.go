package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyStoreType string = "BATTERY_STORE_TYPE"
	EnvKeyDataDir   string = "BATTERY_DATA_DIR"
	EnvKeyDbPath    string = "BATTERY_DB_PATH"
	EnvKeyLogDir    string = "BATTERY_LOG_DIR"

	EnvKeyHttpHostPort string = "BATTERY_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "BATTERY_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "BATTERY_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "BATTERY_DEFAULT_BURST"

	EnvKeyNotifyURL string = "BATTERY_NOTIFY_URL"

	StoreTypeXlsx   string = "xlsx"
	StoreTypeSqlite string = "sqlite"
	StoreTypeMemory string = "memory"

	TableBatteries    string = "batteries"
	TableStakeholders string = "stakeholders"
	TableChecks       string = "battery_checks"

	LoggerNameInventoryCore   string = "inventory_core"
	LoggerNameTabularStore    string = "tabular_store"
	LoggerNameRestfulServer   string = "restful_server"
	LoggerNameGrpcServer      string = "grpc_server"
	LoggerNameNotifier        string = "notifier"
	LoggerNameCli             string = "cli"
	LoggerNameMetrics         string = "metrics"
	LoggerFieldCategory       string = "category"
	LoggerFieldTable          string = "table"
	LoggerCategoryBattery     string = "battery"
	LoggerCategoryCheck       string = "check"
	LoggerCategoryStakeholder string = "stakeholder"
)
