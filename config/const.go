package config

import "time"

const (
	FlagConfigPath         = "config-path"
	FlagConfigType         = "config-type"
	FlagConfigAwsRegion    = "aws-region"
	FlagConfigAwsSecretKey = "aws-secret-key"
	FlagConfigDbPass       = "db-pass"

	AWSConfig   = "aws"
	LocalConfig = "local"

	DBDialectMysql   = "mysql"
	DBDialectSqlite3 = "sqlite3"

	EnvVarConfigFilePath = "CONFIG_FILE_PATH"
	EnvVarConfigType     = "CONFIG_TYPE"
	EnvVarDBUserPass     = "DB_PASSWORD"

	DefaultStatusUpdateInterval = 1000 * time.Millisecond
)
