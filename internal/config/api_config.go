package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

type APIConfig struct {
	BaseURL              string  `mapstructure:"base_url"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config APIConfig) validate() error {

	var missingFields []string

	if config.BaseURL == "" {
		missingFields = append(missingFields, "base_url")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("api.base_url", "API_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("api.max_requests_per_second", "API_MAX_REQUESTS_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %v", errs)
	}

	return nil
}
