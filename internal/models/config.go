package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	// dataset input
	DatasetPath string `mapstructure:"dataset"`
	Source      string `mapstructure:"source"` // "json" or "postgres"
	PostgresURL string `mapstructure:"postgres-url"`

	// report
	Window string `mapstructure:"window"` // "7d", "30d" or "all"
	AsOf   string `mapstructure:"as-of"`  // RFC3339 evaluation instant, empty means now

	// output
	OutputPath        string             `mapstructure:"output-path"`
	OutputFolder      string             `mapstructure:"output-folder"`
	OutputFormat      string             `mapstructure:"output-format"`      // "csv" or "parquet"
	OutputDestination string             `mapstructure:"output-destination"` // "local", "console", "s3" or "kafka"
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	// kafka
	KafkaBrokerList       string `mapstructure:"kafka-broker-list"`
	KafkaTopic            string `mapstructure:"kafka-topic"`
	KafkaUseLocal         bool   `mapstructure:"kafka-use-local"`
	KafkaSecurityProtocol string `mapstructure:"kafka_security_protocol"`
	KafkaSaslMechanism    string `mapstructure:"kafka_sasl_mechanism"`
	KafkaSaslUsername     string `mapstructure:"kafka_sasl_username"`
	KafkaSaslPassword     string `mapstructure:"kafka_sasl_password"`
	SessionTimeoutMs      int    `mapstructure:"kafka_session_timeout_ms"`

	// generator
	Seed             int64 `mapstructure:"seed"`
	GenerateDays     int   `mapstructure:"days"`
	InitialCustomers int   `mapstructure:"customers"`

	// server
	ServerAddress string `mapstructure:"addr"`
}

// LoadConfig initialises and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("bitemetrics")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		// a config file is optional; flags and env cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// EvaluationTime resolves the instant the report is anchored to. Every
// time-window computation takes this explicitly so results stay reproducible.
func (cfg *Config) EvaluationTime() (time.Time, error) {
	if cfg.AsOf == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, cfg.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as-of instant %q: %w", cfg.AsOf, err)
	}
	return t, nil
}
