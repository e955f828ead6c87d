package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/syncstate/ledger-hub/config"
	ledgerdb "github.com/syncstate/ledger-hub/db"
	"github.com/syncstate/ledger-hub/logging"
	"github.com/syncstate/ledger-hub/metrics"
	"github.com/syncstate/ledger-hub/restapi"
	"github.com/syncstate/ledger-hub/service"
	"github.com/syncstate/ledger-hub/status"
)

func initFlags() {
	flag.String(config.FlagConfigPath, "", "config file path")
	flag.String(config.FlagConfigType, "", "config type, local or aws")
	flag.String(config.FlagConfigAwsRegion, "", "aws region")
	flag.String(config.FlagConfigAwsSecretKey, "", "aws secret key")
	flag.String(config.FlagConfigDbPass, "", "ledger-hub db password")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		panic(err)
	}
}

func printUsage() {
	fmt.Print("usage: ./ledger-hub --config-type local --config-path configFile\n")
	fmt.Print("usage: ./ledger-hub --config-type aws --aws-region awsRegion --aws-secret-key awsSecretKey\n")
}

func main() {
	var cfg *config.Config
	initFlags()

	configType := viper.GetString(config.FlagConfigType)
	if configType == "" {
		configType = os.Getenv(config.EnvVarConfigType)
	}
	if configType == "" {
		configType = config.LocalConfig
	}
	switch configType {
	case config.AWSConfig:
		awsSecretKey := viper.GetString(config.FlagConfigAwsSecretKey)
		awsRegion := viper.GetString(config.FlagConfigAwsRegion)
		if awsSecretKey == "" || awsRegion == "" {
			printUsage()
			return
		}
		configContent, err := config.GetSecret(awsSecretKey, awsRegion)
		if err != nil {
			fmt.Printf("get aws config error, err=%s", err.Error())
			return
		}
		cfg = config.ParseConfigFromJson(configContent)
	case config.LocalConfig:
		configFilePath := viper.GetString(config.FlagConfigPath)
		if configFilePath == "" {
			configFilePath = os.Getenv(config.EnvVarConfigFilePath)
			if configFilePath == "" {
				printUsage()
				return
			}
		}
		cfg = config.ParseConfigFromFile(configFilePath)
	default:
		printUsage()
		return
	}
	if cfg == nil {
		panic("failed to get configuration")
	}
	cfg.Validate()
	logging.InitLogger(&cfg.LogConfig)

	db := config.InitDBWithConfig(&cfg.DBConfig)
	dao := ledgerdb.NewLedgerSvcDB(db)
	pool := ledgerdb.NewConnectionPool(dao, cfg.DBConfig.MaxOpenConns)

	statusCache := status.NewCache()
	updater := status.NewUpdater(statusCache, pool, cfg.StatusConfig.GetUpdateInterval())
	updater.StartLoop()

	if cfg.ServerConfig.MetricsConfig.Enable {
		m := metrics.NewMetrics(cfg.ServerConfig.MetricsConfig.HTTPAddress)
		m.Start()
	}

	service.LedgerSvc = service.NewLedgerService(pool, &cfg.ServerConfig)

	server := restapi.NewServer(&cfg.ServerConfig, statusCache)
	go func() {
		logging.Logger.Infof("serving ledger query API on %s", cfg.ServerConfig.ListenAddr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logging.Logger.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			logging.Logger.Errorf("failed to shutdown http server, err=%s", err.Error())
		}
	case err := <-updater.Done():
		// The updater is expected to outlive every request; its death is
		// fatal and the supervising process restarts us.
		logging.Logger.Errorf("status updater exited, err=%v", err)
		os.Exit(1)
	}
}
