package config

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		API: APIConfig{
			BaseURL:              "https://staging.example.com/api/v1",
			MaxRequestsPerSecond: 7,
		},
		Storage: StorageConfig{
			StateDir:                 "/tmp/portal-state",
			ConnectionString:         "newConnectionString",
			SnapshotExpirationInDays: 45,
		},
		Watch: WatchConfig{
			RefreshInterval: 3 * time.Hour,
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("API_BASE_URL", override.API.BaseURL)
	os.Setenv("API_MAX_REQUESTS_PER_SECOND", fmt.Sprintf("%f", override.API.MaxRequestsPerSecond))
	os.Setenv("STATE_DIR", override.Storage.StateDir)
	os.Setenv("DB_CONNECTION_STRING", override.Storage.ConnectionString)
	os.Setenv("SNAPSHOT_EXPIRATION_DAYS", strconv.Itoa(override.Storage.SnapshotExpirationInDays))
	os.Setenv("WATCH_REFRESH_INTERVAL", "3h")

	cfg := Get()

	assert.Equal(t, override.API.BaseURL, cfg.API.BaseURL)
	assert.Equal(t, override.API.MaxRequestsPerSecond, cfg.API.MaxRequestsPerSecond)
	assert.Equal(t, override.Storage.StateDir, cfg.Storage.StateDir)
	assert.Equal(t, override.Storage.ConnectionString, cfg.Storage.ConnectionString)
	assert.Equal(t, override.Storage.SnapshotExpirationInDays, cfg.Storage.SnapshotExpirationInDays)
	assert.Equal(t, override.Watch.RefreshInterval, cfg.Watch.RefreshInterval)
}

func Test_Config_MetricsPortDefaultsWhenOmitted(t *testing.T) {

	content := `api:
  base_url: https://example.com/api/v1
storage:
  state_dir: /tmp/portal-test
  connection_string: /tmp/portal-test/portal.db
logger:
  log_level: INFO
  app_name: portal-test
  output_file: /tmp/portal-test/portal.log
watch:
  refresh_interval: 15m
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2112, cfg.Watch.MetricsPort)
}
