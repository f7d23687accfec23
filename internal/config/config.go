package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Venue  VenueConfig  `mapstructure:"venue"`
	Hold   HoldConfig   `mapstructure:"hold"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type VenueConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

type HoldConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

func LoadConfig() (*viper.Viper, error) {
	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	viperInstance.SetDefault("server.host", "0.0.0.0")
	viperInstance.SetDefault("server.port", "8080")
	viperInstance.SetDefault("server.read_timeout", "5s")
	viperInstance.SetDefault("server.write_timeout", "10s")
	viperInstance.SetDefault("server.idle_timeout", "120s")
	viperInstance.SetDefault("server.shutdown_timeout", "5s")
	viperInstance.SetDefault("venue.rows", 9)
	viperInstance.SetDefault("venue.cols", 33)
	viperInstance.SetDefault("hold.duration", "60s")

	if err := viperInstance.ReadInConfig(); err != nil {
		// Defaults cover a missing file; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
