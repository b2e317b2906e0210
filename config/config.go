package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"jersey_store"`
	Port         string `envconfig:"PORT" default:"8000"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("Warning: .env file not found, using environment variables or defaults.")
		} else {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Printf("Warning: Error processing environment configuration: %v", err)
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: Environment variable DATABASE_URL not set and no default value provided")
	}

	return &cfg
}
