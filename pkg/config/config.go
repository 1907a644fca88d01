package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	Host           string        `mapstructure:"host"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type ClassifierConfig struct {
	Provider  string        `mapstructure:"provider"`
	Model     string        `mapstructure:"model"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Breaker   BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxFailures uint32        `mapstructure:"max_failures"`
}

type ModerationConfig struct {
	DisabledLogInterval time.Duration `mapstructure:"disabled_log_interval"`
}

var supportedProviders = []string{"gemini", "google", "openai", "anthropic"}

var (
	globalConfig Config
	loaded       *viper.Viper
)

// Load reads config.yaml from configPath (if present) and the environment.
// A missing file is not an error: every key has a default or an env binding.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("classifier.api_key", "CLASSIFIER_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind classifier credential env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfig = cfg
	loaded = v
	return &globalConfig, nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("classifier.provider", "gemini")
	v.SetDefault("classifier.model", "")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.timeout", "15s")
	v.SetDefault("classifier.max_tokens", 0)
	v.SetDefault("classifier.breaker.enabled", true)
	v.SetDefault("classifier.breaker.timeout", "30s")
	v.SetDefault("classifier.breaker.max_failures", 5)
	v.SetDefault("moderation.disabled_log_interval", "10m")
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	provider := strings.ToLower(strings.TrimSpace(c.Classifier.Provider))
	supported := false
	for _, p := range supportedProviders {
		if p == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported classifier.provider %q", c.Classifier.Provider)
	}
	c.Classifier.Provider = provider
	if c.Classifier.Timeout <= 0 {
		return fmt.Errorf("classifier.timeout must be positive")
	}
	return nil
}

// APIKey returns a function reading the classifier credential at call time,
// so a key provided after startup is picked up without a restart.
func APIKey() func() string {
	v := loaded
	fallback := globalConfig.Classifier.APIKey
	return func() string {
		if v == nil {
			return fallback
		}
		return v.GetString("classifier.api_key")
	}
}

func GetConfig() *Config {
	return &globalConfig
}
