package dashboard

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stakestar/avaxtracker/api"
	"github.com/stakestar/avaxtracker/avascan"
	"github.com/stakestar/avaxtracker/cli/args"
	"github.com/stakestar/avaxtracker/geodata"
	"github.com/stakestar/avaxtracker/logger"
	"github.com/stakestar/avaxtracker/metrics"
	"github.com/stakestar/avaxtracker/uptime"
)

type config struct {
	Tracker uptime.Config  `yaml:"tracker" json:"tracker"`
	Avascan avascan.Config `yaml:"avascan" json:"avascan"`
	GeoData geodata.Config `yaml:"geoData" json:"geoData"`
	Api     api.Config     `yaml:"api" json:"api"`
}

var globalArgs args.GlobalArgs

// StartDashboardCmd is the command to start the validator dashboard
var StartDashboardCmd = &cobra.Command{
	Use:   "start-dashboard",
	Short: "Starts the validator uptime dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(globalArgs.ConfigPath, globalArgs.EnvFile)
		if err != nil {
			log.Fatal("Error reading config file: ", err)
		}

		logger, err := logger.Create(globalArgs.LogLevel)
		if err != nil {
			fmt.Println("Error initializing logger")
			return
		}
		defer logger.Sync()

		if err := cfg.Tracker.Validate(); err != nil {
			logger.Fatal("Invalid tracker config", zap.Error(err))
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err := metrics.New(registry)
		if err != nil {
			logger.Fatal("Error registering metrics", zap.Error(err))
		}

		geo, err := geodata.New(&cfg.GeoData, logger)
		if err != nil {
			logger.Fatal("Error setting up geolocation", zap.Error(err))
		}
		defer geo.Close()

		client := avascan.NewClient(&cfg.Avascan, logger)
		cache := uptime.NewCache(cfg.Tracker.Validators)
		normalizer := uptime.NewNormalizer(&cfg.Tracker, client, geo, cache, m, logger)

		logger.Info("tracking validators",
			zap.Strings("nodeIds", normalizer.Validators()),
			zap.String("geoProvider", cfg.GeoData.Provider),
			zap.Duration("refreshInterval", cfg.Api.RefreshInterval()),
		)

		server := api.New(&cfg.Api, logger, normalizer, registry)
		if err := server.Start(); err != nil {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	},
}

func init() {
	args.ProcessArgs(&globalArgs, StartDashboardCmd)
}

func loadConfig(configPath, envFile string) (*config, error) {
	if configPath == "" {
		return nil, errors.New("config path is required")
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "could not load env file %s", envFile)
		}
	}

	var cfg config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
