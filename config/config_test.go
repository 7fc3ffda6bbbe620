package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppReadsYAMLAndAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	yml := `
logging:
  level: debug
mongo:
  uri: mongodb://localhost:27017
generation:
  model_name: gemini-test
  quota:
    requests_per_minute: 10
scan:
  exclusive: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(yml), 0o644))

	wd, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("MONGO_URI", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DISPATCH_MODE", "")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "")
	t.Setenv("KAFKA_GROUP_ID", "")

	InitApp()
	cfg := GetConfig()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "contentgraph", cfg.Mongo.Database)
	assert.Equal(t, "gemini-test", cfg.Generation.ModelName)
	assert.Equal(t, 10, cfg.Generation.Quota.RequestsPerMinute)
	assert.True(t, cfg.Scan.Exclusive)
	assert.Equal(t, 2, cfg.Scan.DefaultMaxExternalLinks)
	assert.Equal(t, 6*time.Hour, cfg.Scan.StaleAfter)
	assert.Equal(t, 1, cfg.LinkHealth.MinLinks)
	assert.Equal(t, 3*time.Second, cfg.Cluster.PollInterval)
	assert.Equal(t, DispatchInProcess, cfg.Dispatch.Mode)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Empty(t, cfg.Dispatch.Brokers)
	assert.Equal(t, "content-graph-worker", cfg.Dispatch.GroupID)
	assert.Equal(t, 3, cfg.Dispatch.Partitions)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte("mongo:\n  uri: mongodb://file\n"), 0o644))

	wd, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("MONGO_URI", "mongodb://env")
	t.Setenv("DISPATCH_MODE", "Kafka")

	InitApp()
	cfg := GetConfig()

	assert.Equal(t, "mongodb://env", cfg.Mongo.URI)
	assert.Equal(t, DispatchKafka, cfg.Dispatch.Mode)
}
