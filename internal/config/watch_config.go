package config

import (
	"fmt"
	"github.com/spf13/viper"
	"time"
)

type WatchConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	RotateInterval  time.Duration `mapstructure:"rotate_interval"`
	MetricsPort     int           `mapstructure:"metrics_port"`
}

func (config WatchConfig) validate() error {
	if config.RefreshInterval < 0 || config.RotateInterval < 0 {
		return fmt.Errorf("watch intervals must not be negative")
	}
	if config.MetricsPort <= 0 {
		return fmt.Errorf("watch metrics_port must be positive")
	}
	return nil
}

func (config WatchConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("watch.refresh_interval", "WATCH_REFRESH_INTERVAL"); err != nil {
		return err
	}

	if err := viper.BindEnv("watch.rotate_interval", "WATCH_ROTATE_INTERVAL"); err != nil {
		return err
	}

	return viper.BindEnv("watch.metrics_port", "METRICS_PORT")
}
