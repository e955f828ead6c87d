package logging

import (
	"os"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/syncstate/ledger-hub/config"
)

// Logger is the global logger shared by all packages.
var Logger = logging.MustGetLogger("ledger-hub")

var format = logging.MustStringFormatter(
	`%{time:2006-01-02T15:04:05.000Z07:00} %{level:.4s} %{shortfile} %{message}`,
)

func InitLogger(cfg *config.LogConfig) {
	backends := make([]logging.Backend, 0)

	level, err := logging.LogLevel(cfg.Level)
	if err != nil {
		level = logging.INFO
	}

	if cfg.UseConsoleLogger {
		consoleBackend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", 0), format)
		leveledConsoleBackend := logging.AddModuleLevel(consoleBackend)
		leveledConsoleBackend.SetLevel(level, "")
		backends = append(backends, leveledConsoleBackend)
	}

	if cfg.UseFileLogger {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxFileSizeInMB,
			MaxBackups: cfg.MaxBackupsOfLogFiles,
			MaxAge:     cfg.MaxAgeToRetainLogFilesInDays,
			Compress:   cfg.Compress,
		}
		fileBackend := logging.NewBackendFormatter(logging.NewLogBackend(rotator, "", 0), format)
		leveledFileBackend := logging.AddModuleLevel(fileBackend)
		leveledFileBackend.SetLevel(level, "")
		backends = append(backends, leveledFileBackend)
	}

	logging.SetBackend(backends...)
}
