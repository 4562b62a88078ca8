package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  postgresDsn: "host=localhost user=roster dbname=roster"
  redisAddr: "localhost:6379"
  memcachedAddr: "localhost:11211"
  enableTrace: true
  traceEndpoint: "localhost:4318"
service:
  secret: "supersecret"
  maxLimit: 200
`)

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", conf.Server.Addr)
	assert.Equal(t, "host=localhost user=roster dbname=roster", conf.Server.PostgresDsn)
	assert.Equal(t, "localhost:6379", conf.Server.RedisAddr)
	assert.Equal(t, "localhost:11211", conf.Server.MemcachedAddr)
	assert.True(t, conf.Server.EnableTrace)
	assert.Equal(t, "supersecret", conf.Service.Secret)
	assert.Equal(t, int64(200), conf.Service.MaxLimit)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
service:
  secret: "supersecret"
`)

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8000", conf.Server.Addr)
	assert.Equal(t, int64(500), conf.Service.MaxLimit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
