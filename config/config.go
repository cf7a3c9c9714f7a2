// Package config loads service configuration from config.yaml and the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultDiscountRate       = 0.10
	defaultInitialLocation    = "Warehouse"
	defaultEstimatedLeadTime  = 72 * time.Hour
	defaultTrackingPrefix     = "TR"
	defaultNewShopWindow      = 7 * 24 * time.Hour
	defaultNominatimURL       = "https://nominatim.openstreetmap.org"
	defaultGeocoderTimeout    = 5 * time.Second
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
	defaultTokenInfoURL       = "https://oauth2.googleapis.com/tokeninfo"
	defaultTokenInfoTimeout   = 10 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog"`
	Shop     ShopConfig     `json:"shop" yaml:"shop"`
	Order    OrderConfig    `json:"order" yaml:"order"`
	Delivery DeliveryConfig `json:"delivery" yaml:"delivery"`

	// Geocoder configures the reverse-geocoding client used by shop registration.
	Geocoder GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// QRCode configures delivery tracking labels.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type GoogleOAuthConfig struct {
	// ClientID is the expected audience of ID tokens sent by the front end.
	ClientID string `json:"clientId" yaml:"clientId"`
	// TokenInfoURL is Google's endpoint that checks ID token signatures.
	TokenInfoURL string        `json:"tokenInfoUrl" yaml:"tokenInfoUrl"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CatalogConfig controls the product catalog.
type CatalogConfig struct {
	// SeedOnEmpty inserts the default products the first time the catalog is read empty.
	SeedOnEmpty *bool `json:"seedOnEmpty" yaml:"seedOnEmpty"`
}

// ShopConfig controls shop registration and proximity search.
type ShopConfig struct {
	NewShopWindow   time.Duration `json:"newShopWindow" yaml:"newShopWindow"`
	DefaultRadiusKm float64       `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	// MaxRadiusKm caps proximity queries. Zero means no cap.
	MaxRadiusKm float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// OrderConfig controls order pricing.
type OrderConfig struct {
	DiscountRate       float64 `json:"discountRate" yaml:"discountRate"`
	AutoCreateDelivery *bool   `json:"autoCreateDelivery" yaml:"autoCreateDelivery"`
}

// DeliveryConfig controls delivery creation and status changes.
type DeliveryConfig struct {
	InitialLocation    string        `json:"initialLocation" yaml:"initialLocation"`
	EstimatedLeadTime  time.Duration `json:"estimatedLeadTime" yaml:"estimatedLeadTime"`
	TrackingPrefix     string        `json:"trackingPrefix" yaml:"trackingPrefix"`
	EnforceForwardOnly bool          `json:"enforceForwardOnly" yaml:"enforceForwardOnly"`
}

// GeocoderConfig points at a Nominatim-compatible reverse geocoding API.
type GeocoderConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// SeedCatalog reports whether an empty catalog is seeded. Defaults to true.
func (c CatalogConfig) SeedCatalog() bool {
	return c.SeedOnEmpty == nil || *c.SeedOnEmpty
}

// AutoDelivery reports whether placing an order also creates its delivery. Defaults to true.
func (c OrderConfig) AutoDelivery() bool {
	return c.AutoCreateDelivery == nil || *c.AutoCreateDelivery
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Shop.NewShopWindow <= 0 {
		cfg.Shop.NewShopWindow = defaultNewShopWindow
	}
	if cfg.Order.DiscountRate == 0 {
		cfg.Order.DiscountRate = defaultDiscountRate
	}
	if cfg.Delivery.InitialLocation == "" {
		cfg.Delivery.InitialLocation = defaultInitialLocation
	}
	if cfg.Delivery.EstimatedLeadTime <= 0 {
		cfg.Delivery.EstimatedLeadTime = defaultEstimatedLeadTime
	}
	if cfg.Delivery.TrackingPrefix == "" {
		cfg.Delivery.TrackingPrefix = defaultTrackingPrefix
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = defaultNominatimURL
	}
	if cfg.Geocoder.Timeout <= 0 {
		cfg.Geocoder.Timeout = defaultGeocoderTimeout
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = cfg.Env.ServiceName
	}
	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.GoogleOAuth.TokenInfoURL == "" {
		cfg.GoogleOAuth.TokenInfoURL = defaultTokenInfoURL
	}
	if cfg.GoogleOAuth.Timeout <= 0 {
		cfg.GoogleOAuth.Timeout = defaultTokenInfoTimeout
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
}

func (cfg *Config) validate() error {
	if cfg.Order.DiscountRate < 0 || cfg.Order.DiscountRate >= 1 {
		return errors.Errorf("order.discountRate must be in [0, 1), got %v", cfg.Order.DiscountRate)
	}
	if cfg.Shop.MaxRadiusKm < 0 {
		return errors.Errorf("shop.maxRadiusKm must not be negative, got %v", cfg.Shop.MaxRadiusKm)
	}
	if cfg.Shop.MaxRadiusKm > 0 && cfg.Shop.DefaultRadiusKm > cfg.Shop.MaxRadiusKm {
		return errors.Errorf("shop.defaultRadiusKm %v exceeds shop.maxRadiusKm %v", cfg.Shop.DefaultRadiusKm, cfg.Shop.MaxRadiusKm)
	}

	return nil
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
