package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "snackbasket"

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 7*24*time.Hour, cfg.Shop.NewShopWindow)
	assert.InDelta(t, 0.10, cfg.Order.DiscountRate, 1e-9)
	assert.Equal(t, "Warehouse", cfg.Delivery.InitialLocation)
	assert.Equal(t, 72*time.Hour, cfg.Delivery.EstimatedLeadTime)
	assert.Equal(t, "TR", cfg.Delivery.TrackingPrefix)
	assert.Equal(t, "snackbasket", cfg.Geocoder.UserAgent)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.True(t, cfg.Catalog.SeedCatalog())
	assert.True(t, cfg.Order.AutoDelivery())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "discount rate of one", mutate: func(c *Config) { c.Order.DiscountRate = 1 }, wantErr: true},
		{name: "negative max radius", mutate: func(c *Config) { c.Shop.MaxRadiusKm = -1 }, wantErr: true},
		{
			name: "default radius above max",
			mutate: func(c *Config) {
				c.Shop.MaxRadiusKm = 10
				c.Shop.DefaultRadiusKm = 20
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("delivery:\n  trackingPrefix: TR\n  estimatedLeadTime: 72h\norder:\n  discountRate: 0.1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("DELIVERY_TRACKINGPREFIX", "SB")
	t.Setenv("DELIVERY_ESTIMATEDLEADTIME", "48h")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "SB", cfg.Delivery.TrackingPrefix)
	assert.Equal(t, 48*time.Hour, cfg.Delivery.EstimatedLeadTime)
	assert.InDelta(t, 0.1, cfg.Order.DiscountRate, 1e-9)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
