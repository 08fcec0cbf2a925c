package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"pennyledger"`
		Currency string `envconfig:"CURRENCY" default:"INR"`
	}

	Account struct {
		OpeningBalance decimal.Decimal `envconfig:"OPENING_BALANCE" default:"5000"`
		MinimumBalance decimal.Decimal `envconfig:"MINIMUM_BALANCE" default:"1000"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
