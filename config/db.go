package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDBWithConfig opens the configured database and applies the connection
// pool limits. The DB password may be overridden via the DB_PASSWORD env var
// so it does not have to live in the config file.
func InitDBWithConfig(cfg *DBConfig) *gorm.DB {
	password := os.Getenv(EnvVarDBUserPass)
	if password == "" {
		password = cfg.Password
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Dialect {
	case DBDialectMysql:
		dialector = mysql.Open(fmt.Sprintf("%s:%s@%s", cfg.Username, password, cfg.Url))
	case DBDialectSqlite3:
		dialector = sqlite.Open(cfg.Url)
	default:
		panic(fmt.Sprintf("unexpected DB dialect %s", cfg.Dialect))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic(fmt.Sprintf("open db error, err=%s", err.Error()))
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	return db
}
