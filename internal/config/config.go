package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Receipt ReceiptConfig `mapstructure:"receipt"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ReceiptConfig holds receipt generation configuration
type ReceiptConfig struct {
	OutputDir    string `mapstructure:"output_dir"`
	FontPath     string `mapstructure:"font_path"`
	FontBoldPath string `mapstructure:"font_bold_path"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables.
// An empty configPath loads defaults and environment overrides only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)

	// Receipt defaults. DejaVu ships on most Linux hosts and covers the
	// Cyrillic and Polish glyphs the form needs.
	v.SetDefault("receipt.output_dir", "generated_receipts")
	v.SetDefault("receipt.font_path", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf")
	v.SetDefault("receipt.font_bold_path", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("receipt.output_dir", "RECEIPT_OUTPUT_DIR")
	v.BindEnv("receipt.font_path", "RECEIPT_FONT_PATH")
	v.BindEnv("receipt.font_bold_path", "RECEIPT_FONT_BOLD_PATH")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Receipt.OutputDir == "" {
		return fmt.Errorf("receipt.output_dir is required")
	}
	if c.Receipt.FontPath == "" {
		return fmt.Errorf("receipt.font_path is required")
	}
	if _, err := os.Stat(c.Receipt.FontPath); err != nil {
		return fmt.Errorf("receipt.font_path not readable: %w", err)
	}
	if c.Receipt.FontBoldPath != "" {
		if _, err := os.Stat(c.Receipt.FontBoldPath); err != nil {
			return fmt.Errorf("receipt.font_bold_path not readable: %w", err)
		}
	}
	return nil
}
