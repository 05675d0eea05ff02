package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证yaml加载与默认值填充
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
upload:
  dir: "/tmp/resume-uploads"
  max_file_size_mb: 8
quiz:
  seed: 42
auth:
  enabled: true
  api_key: "local-dev-key"
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "/tmp/resume-uploads", cfg.Upload.Dir)
	assert.Equal(t, 8, cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(42), cfg.Quiz.Seed)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "local-dev-key", cfg.Auth.APIKey)
	assert.Equal(t, "debug", cfg.Logger.Level)

	// 未显式配置的字段应填入默认值
	assert.Equal(t, []string{".pdf"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, 30, cfg.Analyzer.ExtractTimeoutSeconds)
	assert.Equal(t, "resume-quiz-go", cfg.Tracing.ServiceName)
	assert.Equal(t, float64(1), cfg.Tracing.SampleRatio)
	assert.Equal(t, "json", cfg.Logger.Format)
}

// TestLoadConfigEnvOverride 环境变量覆盖文件配置
func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  api_key: from-file\n"), 0o644))

	t.Setenv("RESUME_QUIZ_API_KEY", "from-env")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.APIKey)
	assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
}

// TestDefaultConfig 内置默认配置可直接使用
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MaxFileSizeBytes())
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, int64(0), cfg.Quiz.Seed)
}

// TestExtensionAllowed 扩展名白名单大小写不敏感
func TestExtensionAllowed(t *testing.T) {
	upload := UploadConfig{AllowedExtensions: []string{".pdf"}}

	assert.True(t, upload.ExtensionAllowed("resume.pdf"))
	assert.True(t, upload.ExtensionAllowed("RESUME.PDF"))
	assert.False(t, upload.ExtensionAllowed("resume.docx"))
	assert.False(t, upload.ExtensionAllowed("resume"))
	assert.False(t, upload.ExtensionAllowed(""))
}
