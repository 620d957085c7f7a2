package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API       API       `mapstructure:"api"`
	Firebase  Firebase  `mapstructure:"firebase"`
	Webhook   Webhook   `mapstructure:"webhook"`
	RateLimit RateLimit `mapstructure:"rateLimit"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Firebase struct {
	ProjectID   string `mapstructure:"projectId"`
	PrivateKey  string `mapstructure:"privateKey"`
	ClientEmail string `mapstructure:"clientEmail"`
}

type Webhook struct {
	SecretToken string `mapstructure:"secretToken"`
}

type RateLimit struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", ":3000")
	viper.SetDefault("rateLimit.limit", 5)
	viper.SetDefault("rateLimit.window", time.Minute)

	// Credentials and the webhook secret come from the environment, never
	// from the config file.
	viper.BindEnv("api.port", "PORT")
	viper.BindEnv("firebase.projectId", "FIREBASE_PROJECT_ID")
	viper.BindEnv("firebase.privateKey", "FIREBASE_PRIVATE_KEY")
	viper.BindEnv("firebase.clientEmail", "FIREBASE_CLIENT_EMAIL")
	viper.BindEnv("webhook.secretToken", "WEBHOOK_SECRET_TOKEN")

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
