package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, read once at startup
type Config struct {
	Port     string
	DBDriver string
	DBDSN    string
}

// LoadConfig reads configuration from the environment, with an optional
// .env file. Every knob has a default so the binary runs unconfigured
// against a local sqlite file.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     os.Getenv("PORT"),
		DBDriver: os.Getenv("DB_DRIVER"),
		DBDSN:    os.Getenv("DB_DSN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBDSN == "" {
		switch cfg.DBDriver {
		case "mysql":
			cfg.DBDSN = "root:@tcp(localhost:3306)/app"
		default:
			cfg.DBDSN = "app.db"
		}
	}
	return cfg
}
