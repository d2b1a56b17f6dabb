// Package config resolves the process configuration once at startup. The
// analytics core receives the values as plain constants; nothing reads the
// environment after Load returns.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config carries the tunables consumed by the analytics core.
type Config struct {
	MinCustomerAge      int
	DiscountAgeCap      int
	DiscountRateForAge  decimal.Decimal
	DiscountRateForDate decimal.Decimal
	OrdersFile          string
	LogFile             string
	LogMode             string
}

// Load reads configuration from the environment (ORDER_ prefix), falling
// back to the declared defaults. A malformed discount rate is a load
// error, not a silent fallback.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ORDER")
	v.AutomaticEnv()

	v.SetDefault("min_customer_age", 18)
	v.SetDefault("discount_age_cap", 25)
	v.SetDefault("discount_rate_for_age", "0.03")
	v.SetDefault("discount_rate_for_date", "0.02")
	v.SetDefault("orders_file", "orders.json")
	v.SetDefault("log_file", "logs.log")
	v.SetDefault("log_mode", "dev")

	ageRate, err := decimal.NewFromString(v.GetString("discount_rate_for_age"))
	if err != nil {
		return Config{}, fmt.Errorf("discount_rate_for_age: %w", err)
	}
	dateRate, err := decimal.NewFromString(v.GetString("discount_rate_for_date"))
	if err != nil {
		return Config{}, fmt.Errorf("discount_rate_for_date: %w", err)
	}

	return Config{
		MinCustomerAge:      v.GetInt("min_customer_age"),
		DiscountAgeCap:      v.GetInt("discount_age_cap"),
		DiscountRateForAge:  ageRate,
		DiscountRateForDate: dateRate,
		OrdersFile:          v.GetString("orders_file"),
		LogFile:             v.GetString("log_file"),
		LogMode:             v.GetString("log_mode"),
	}, nil
}
