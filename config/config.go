package config

import (
	"os"
	"sync"

	"mlforge/logutils"
	"mlforge/model"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the engine's runtime configuration: log level and the
// per-tier quota table. The tier table is an explicit value handed to
// the policy and router constructors, so tests can substitute their own
// without touching global state; GetConfig is only the convenience
// accessor for the deployed default.
type Config struct {
	LogLevel  string          `yaml:"logLevel"`
	TierTable model.TierTable `yaml:"tierTable"`
}

var (
	once   sync.Once
	config *Config
)

// GetConfig loads the configuration once and caches it. The path
// defaults to ./etc/config.yaml and can be overridden through the
// MLFORGE_CONFIG environment variable (a .env file is honored). A
// missing file falls back to the built-in defaults; a malformed tier
// table panics, since that is a deployment bug rather than a data or
// policy condition.
func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func initConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logutils.Log.Debug("no .env file found, using system env vars")
	}

	configPath := os.Getenv("MLFORGE_CONFIG")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}

	cfg := Default()
	err := readConfig(configPath, cfg)
	if os.IsNotExist(err) {
		logutils.Log.WithFields(logutils.Fields{"path": configPath}).
			Warn("config file not found, using built-in tier table")
	} else if err != nil {
		logutils.Log.Error("init config: ", err)
		panic(err)
	}

	if err := cfg.TierTable.Validate(); err != nil {
		logutils.Log.Error("init config: ", err)
		panic(err)
	}
	logutils.SetLevel(cfg.LogLevel)
	return cfg
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		TierTable: DefaultTierTable(),
	}
}

// DefaultTierTable is the shipped quota table. Capability increases
// monotonically across free < silver < gold; the GPU machine is only
// reachable from the gold tier.
func DefaultTierTable() model.TierTable {
	return model.TierTable{
		Tiers: map[model.SubscriptionTier]model.TierSpec{
			model.TierFree: {
				MachineType:  "m5.large",
				Specs:        "2 vCPU, 8 GB RAM",
				CostPerHour:  0.096,
				MaxHours:     2,
				MaxDatasetMB: 100,
			},
			model.TierSilver: {
				MachineType:  "m5.2xlarge",
				Specs:        "8 vCPU, 32 GB RAM",
				CostPerHour:  0.384,
				MaxHours:     8,
				MaxDatasetMB: 1024,
			},
			model.TierGold: {
				MachineType:  "m5.4xlarge",
				Specs:        "16 vCPU, 64 GB RAM",
				CostPerHour:  0.768,
				MaxHours:     24,
				MaxDatasetMB: 10240,
			},
		},
		GPU: model.GPUSpec{
			MachineType: "g4dn.xlarge",
			Specs:       "4 vCPU, 16 GB RAM, 1x NVIDIA T4",
			CostPerHour: 0.526,
			MaxHours:    24,
			GPUType:     "NVIDIA T4",
		},
	}
}
