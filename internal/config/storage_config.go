package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type StorageConfig struct {
	StateDir                 string `mapstructure:"state_dir"`
	ConnectionString         string `mapstructure:"connection_string"`
	SnapshotExpirationInDays int    `mapstructure:"snapshot_expiration_days"`
}

func (config StorageConfig) validate() error {
	if config.StateDir == "" {
		return fmt.Errorf("missing variable: storage state dir")
	}
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: storage connection string")
	}
	return nil
}

func (config StorageConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("storage.state_dir", "STATE_DIR"); err != nil {
		return err
	}

	if err := viper.BindEnv("storage.snapshot_expiration_days", "SNAPSHOT_EXPIRATION_DAYS"); err != nil {
		return err
	}

	return viper.BindEnv("storage.connection_string", "DB_CONNECTION_STRING")
}
