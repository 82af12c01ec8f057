package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr         string `mapstructure:"addr"`
	GenAIKey     string `mapstructure:"genai_key"`
	GenAIModel   string `mapstructure:"genai_model"`
	GeoLookupURL string `mapstructure:"geo_lookup_url"`
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the DOSSIER_ prefix, e.g. DOSSIER_GENAI_KEY.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":3000")
	v.SetDefault("genai_key", "")
	v.SetDefault("genai_model", "gemini-2.0-flash")
	v.SetDefault("geo_lookup_url", "http://ip-api.com/json")

	v.SetEnvPrefix("DOSSIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
