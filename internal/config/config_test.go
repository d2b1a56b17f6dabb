package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 18, cfg.MinCustomerAge)
	assert.Equal(t, 25, cfg.DiscountAgeCap)
	assert.Equal(t, "0.03", cfg.DiscountRateForAge.String())
	assert.Equal(t, "0.02", cfg.DiscountRateForDate.String())
	assert.Equal(t, "orders.json", cfg.OrdersFile)
	assert.Equal(t, "logs.log", cfg.LogFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ORDER_DISCOUNT_AGE_CAP", "30")
	t.Setenv("ORDER_DISCOUNT_RATE_FOR_AGE", "0.05")
	t.Setenv("ORDER_ORDERS_FILE", "/tmp/input.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.DiscountAgeCap)
	assert.Equal(t, "0.05", cfg.DiscountRateForAge.String())
	assert.Equal(t, "/tmp/input.json", cfg.OrdersFile)
}

func TestLoad_MalformedRate(t *testing.T) {
	t.Setenv("ORDER_DISCOUNT_RATE_FOR_DATE", "two percent")

	_, err := Load()
	assert.Error(t, err)
}
