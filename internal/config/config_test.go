package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "agendamento"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "service.log"
level = "info"

[metrics]
enabled = true
service_name = "agendamento"
path = "/metrics"

[distance_service]
url = ""
timeout = 10
stub_delay_ms = 1000

[driver]
phone = "5511968362035"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Empty(t, cfg.DistanceService.URL)
	assert.Equal(t, 1000, cfg.DistanceService.StubDelayMS)
	assert.Equal(t, "5511968362035", cfg.Driver.Phone)
}

func TestDatabase_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=agendamento sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	bad := `
[database]
host = "localhost"
dbname = "agendamento"

[driver]
phone = "5511968362035"
`
	_, err := Load(writeConfig(t, bad))
	assert.ErrorContains(t, err, "http_port")
}

func TestLoad_MissingDriverPhone(t *testing.T) {
	bad := `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "agendamento"
`
	_, err := Load(writeConfig(t, bad))
	assert.ErrorContains(t, err, "driver.phone")
}
