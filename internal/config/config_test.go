package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  address: ":9999"
  max_upload_bytes: 5242880
tika:
  server_url: "http://tika.internal:9998"
  timeout_seconds: 30
pipeline:
  min_content_length: 80
  pdf_timeout: "15s"
  expected_work_entries: 5
logger:
  level: "warn"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Address)
	assert.Equal(t, int64(5242880), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "http://tika.internal:9998", cfg.Tika.ServerURL)
	assert.Equal(t, 30, cfg.Tika.Timeout)
	assert.Equal(t, 80, cfg.Pipeline.MinContentLength)
	assert.Equal(t, "15s", cfg.Pipeline.PDFTimeout)
	assert.Equal(t, 5, cfg.Pipeline.ExpectedWorkEntries)
	assert.Equal(t, "warn", cfg.Logger.Level)

	// 未配置的字段补齐默认值
	assert.Equal(t, 10, cfg.Pipeline.MinWordCount)
	assert.Equal(t, "20s", cfg.Pipeline.DOCXTimeout)
	assert.InDelta(t, 0.8, cfg.Pipeline.HighConfidenceCeiling, 1e-9)
}

func TestLoadConfigMissingFileInTests(t *testing.T) {
	// 测试环境下文件缺失回退为默认配置
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	content := `
tika:
  server_url: "http://from-file:9998"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("TIKA_SERVER_URL", "http://from-env:9998")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9998", cfg.Tika.ServerURL)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 50, cfg.Pipeline.MinContentLength)
	assert.Equal(t, 10, cfg.Pipeline.MinWordCount)
	assert.Equal(t, 3, cfg.Pipeline.ExpectedWorkEntries)
	assert.Equal(t, 2, cfg.Pipeline.ExpectedEducationEntries)
	assert.Equal(t, 10, cfg.Pipeline.ExpectedSkillCount)
	assert.Equal(t, "pretty", cfg.Logger.Format)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 15*time.Second, GetDuration("15s", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("not-a-duration", time.Minute))
}
