package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config is the API server configuration, read from POS_ environment
// variables, flags and YAML files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL  string `usage:"PostgreSQL connection URL (POS_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	APIKeyPepper string `usage:"HMAC pepper for API key hashing" flag:"api-key-pepper"`
	Receipts     ReceiptsConfig
	Broker       BrokerConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	Graceful     GracefulConfig
}

// ReceiptsConfig selects where receipt snapshots are stored.
type ReceiptsConfig struct {
	Backend  string        `default:"file" usage:"Snapshot storage backend: file or s3"`
	Dir      string        `default:"./storage/receipts" usage:"Snapshot directory for the file backend"`
	Bucket   string        `usage:"S3 bucket for the s3 backend"`
	Prefix   string        `default:"receipts" usage:"S3 key prefix"`
	Endpoint string        `usage:"S3 compatible endpoint, e.g. MinIO"`
	CacheURL string        `usage:"Redis URL caching snapshots in front of the backend" flag:"receipts-cache-url" env:"CACHE_URL"`
	CacheTTL time.Duration `default:"24h" usage:"Cached snapshot lifetime" flag:"receipts-cache-ttl"`
}

// BrokerConfig configures order event publishing. An empty URL disables it.
type BrokerConfig struct {
	URL      string `usage:"AMQP URL for order events" flag:"broker-url"`
	Exchange string `default:"pos.orders" usage:"Topic exchange for order events"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"300" usage:"Max requests per window"`
	Window time.Duration `default:"1m" usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s" usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads the configuration and checks required settings.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "POS",
		Files:     []string{"config.yaml", "/etc/pos/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL is required: set POS_DATABASE_URL or DATABASE_URL")
	}
	if c.APIKeyPepper == "" {
		return errors.New("api key pepper is required: set POS_API_KEY_PEPPER")
	}
	switch c.Receipts.Backend {
	case "file":
		if c.Receipts.Dir == "" {
			return errors.New("receipts dir is required for the file backend")
		}
	case "s3":
		if c.Receipts.Bucket == "" {
			return errors.New("receipts bucket is required for the s3 backend")
		}
	default:
		return errors.Errorf("unknown receipts backend %q", c.Receipts.Backend)
	}
	return nil
}

// applyPlatformDefaults honours the DATABASE_URL and PORT variables set by
// hosting platforms.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
