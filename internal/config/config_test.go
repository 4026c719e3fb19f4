package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	font := writeTempFont(t)
	t.Setenv("RECEIPT_FONT_PATH", font)
	t.Setenv("RECEIPT_FONT_BOLD_PATH", font)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "generated_receipts", cfg.Receipt.OutputDir)
	assert.Equal(t, font, cfg.Receipt.FontPath)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadFromFile(t *testing.T) {
	font := writeTempFont(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9999
receipt:
  output_dir: /tmp/receipts
  font_path: ` + font + `
  font_bold_path: ` + font + `
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "/tmp/receipts", cfg.Receipt.OutputDir)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	font := writeTempFont(t)

	valid := Config{
		Server:  ServerConfig{Port: 8080},
		Receipt: ReceiptConfig{OutputDir: "out", FontPath: font},
	}
	assert.NoError(t, valid.Validate())

	badPort := valid
	badPort.Server.Port = 0
	assert.Error(t, badPort.Validate())

	noFont := valid
	noFont.Receipt.FontPath = ""
	assert.Error(t, noFont.Validate())

	missingFont := valid
	missingFont.Receipt.FontPath = "/nonexistent/font.ttf"
	assert.Error(t, missingFont.Validate())
}
