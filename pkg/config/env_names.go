package config

const (
	EnvPrefix = "orderlens"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv      = "ORDERLENS_APP_ENV"
	EnvPort        = "ORDERLENS_APP_PORT"
	EnvDatasetPath = "ORDERLENS_DATASET_PATH"
	EnvDatasetURL  = "ORDERLENS_DATASET_URL"
	EnvRedisURL    = "ORDERLENS_REDIS_URL"
)
