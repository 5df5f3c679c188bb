package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`
	JWT struct {
		SecretKey      string `mapstructure:"secret_key"`
		SessionMinutes int    `mapstructure:"session_minutes"`
	} `mapstructure:"jwt"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("store.path", "accounts.dat")
	viper.SetDefault("jwt.session_minutes", 15)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover local runs without a config file.
		log.Printf("No config file read (%v), continuing with defaults", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
