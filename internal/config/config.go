package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StorageConfig locates the state directory holding the persisted token and
// theme preference.
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars, e.g. api.base_url -> API_BASE_URL
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("api.base_url", "http://localhost:5000/api")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("storage.dir", defaultStateDir())
	viper.SetDefault("log.debug", false)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file; defaults and env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fitcoach"
	}
	return filepath.Join(home, ".fitcoach")
}
