package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	Seed SeedConfig
	Demo DemoConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type SeedConfig struct {
	// Value feeds the initial table-status randomization. A fixed value
	// reproduces the same opening floor every run.
	Value int64
}

type DemoConfig struct {
	Venue     string
	UserName  string
	UserPhone string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "nocturne")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SEED", 1)
	viper.SetDefault("DEMO_VENUE", "eclipse")
	viper.SetDefault("DEMO_USER_NAME", "Admin")
	viper.SetDefault("DEMO_USER_PHONE", "+1000000")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine for the demo; defaults and env vars apply.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Seed: SeedConfig{
			Value: viper.GetInt64("SEED"),
		},
		Demo: DemoConfig{
			Venue:     viper.GetString("DEMO_VENUE"),
			UserName:  viper.GetString("DEMO_USER_NAME"),
			UserPhone: viper.GetString("DEMO_USER_PHONE"),
		},
	}

	return config, nil
}
