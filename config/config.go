package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Config struct {
	LogConfig    LogConfig    `json:"log_config"`
	DBConfig     DBConfig     `json:"db_config"`
	ServerConfig ServerConfig `json:"server_config"`
	StatusConfig StatusConfig `json:"status_config"`
}

func (cfg *Config) Validate() {
	cfg.LogConfig.Validate()
	cfg.DBConfig.Validate()
	cfg.ServerConfig.Validate()
}

type ServerConfig struct {
	ListenAddr      string        `json:"listen_addr"`
	ContractAddress string        `json:"contract_address"` // ContractAddress is the ledger contract address reported by the testnet_config endpoint
	MetricsConfig   MetricsConfig `json:"metrics_config"`
}

func (cfg *ServerConfig) Validate() {
	if cfg.ListenAddr == "" {
		panic("listen_addr should not be empty")
	}
	if cfg.ContractAddress == "" {
		panic("contract_address should not be empty")
	}
}

type MetricsConfig struct {
	Enable      bool   `json:"enable"`
	HTTPAddress string `json:"http_address"`
}

type StatusConfig struct {
	UpdateIntervalMS uint64 `json:"update_interval_ms"` // UpdateIntervalMS is the cadence of the network status refresh loop
}

func (cfg *StatusConfig) GetUpdateInterval() time.Duration {
	if cfg.UpdateIntervalMS != 0 {
		return time.Duration(cfg.UpdateIntervalMS) * time.Millisecond
	}
	return DefaultStatusUpdateInterval
}

type DBConfig struct {
	Dialect      string `json:"dialect"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Url          string `json:"url"`
	MaxIdleConns int    `json:"max_idle_conns"`
	MaxOpenConns int    `json:"max_open_conns"`
}

func (cfg *DBConfig) Validate() {
	if cfg.Dialect != DBDialectMysql && cfg.Dialect != DBDialectSqlite3 {
		panic(fmt.Sprintf("only %s and %s supported", DBDialectMysql, DBDialectSqlite3))
	}
	if cfg.Dialect == DBDialectMysql && (cfg.Username == "" || cfg.Url == "") {
		panic("db config is not correct, missing username and/or url")
	}
	if cfg.MaxIdleConns == 0 || cfg.MaxOpenConns == 0 {
		panic("db connections is not correct")
	}
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

func (cfg *LogConfig) Validate() {
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_off_log_files should be larger than 0 if use file logger")
		}
	}
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}
	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	var config Config
	if err := json.Unmarshal(bz, &config); err != nil {
		panic(err)
	}
	return &config
}
