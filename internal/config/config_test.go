package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true
service_name = "terminal-service"
path = "/metrics"

[database]
host = "localhost"
port = 5432
user = "svc"
password = "svc"
dbname = "terminal"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[redis]
addr = "localhost:6379"
db = 1
session_ttl = 3600

[calendar]
horizon_days = 14
open_hour = "08:00"
close_hour = "17:30"
step_minutes = 30
seed = 42

[capture]
url = "http://localhost:8090"
timeout = 30
facing_mode = "environment"
fps = 10

[worker]
enabled = true
reseed_cron = "0 3 * * *"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 14, cfg.Calendar.HorizonDays)
	assert.Equal(t, "08:00", cfg.Calendar.OpenHour)
	assert.Equal(t, int64(42), cfg.Calendar.Seed)
	assert.Equal(t, "0 3 * * *", cfg.Worker.ReseedCron)

	assert.Equal(t,
		"host=localhost port=5432 user=svc password=svc dbname=terminal sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 0

[database]
host = "localhost"
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "http_port")
}
