package internal

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/dukerupert/addrcheck/internal/domain"
)

type Config struct {
	Env         string
	LogLevel    string
	AddressFile string // Path of the JSON document the address book loads from
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		// Walk up directories to find .env (max 2 parent directories)
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			log.Warn().Msg("Warning: .env file not found, using environment variables and defaults")
		}
	}

	v := viper.New()
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("address_file", "internal/address/testdata/addresses.json")
	v.AutomaticEnv()

	cfg := &Config{
		Env:         v.GetString("env"),
		LogLevel:    v.GetString("log_level"),
		AddressFile: v.GetString("address_file"),
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		log.Warn().Str("env", cfg.Env).Msg("Invalid environment. Using default: prod")
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		log.Warn().Str("value", cfg.LogLevel).Msg("Invalid log level. Using default: info")
		cfg.LogLevel = "info"
	}

	if cfg.AddressFile == "" {
		return nil, domain.Errorf(domain.EINVALID, "config.load", "ADDRESS_FILE must not be empty")
	}

	return cfg, nil
}
