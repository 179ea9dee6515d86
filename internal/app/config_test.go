package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DatabaseURL:  "postgres://pos@localhost/pos",
			APIKeyPepper: "pepper",
			Receipts:     ReceiptsConfig{Backend: "file", Dir: "/tmp/receipts"},
		}
	}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no database", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "database URL is required"},
		{name: "no pepper", mutate: func(c *Config) { c.APIKeyPepper = "" }, wantErr: "api key pepper is required"},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Receipts.Backend = "s3" }, wantErr: "bucket is required"},
		{name: "s3 with bucket", mutate: func(c *Config) { c.Receipts = ReceiptsConfig{Backend: "s3", Bucket: "receipts"} }},
		{name: "unknown backend", mutate: func(c *Config) { c.Receipts.Backend = "ftp" }, wantErr: `unknown receipts backend "ftp"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform")
	t.Setenv("PORT", "9000")

	c := Config{Addr: "0.0.0.0:8080"}
	c.applyPlatformDefaults()
	assert.Equal(t, "postgres://platform", c.DatabaseURL)
	assert.Equal(t, "0.0.0.0:9000", c.Addr)

	c = Config{Addr: "127.0.0.1:1234", DatabaseURL: "postgres://explicit"}
	c.applyPlatformDefaults()
	assert.Equal(t, "postgres://explicit", c.DatabaseURL)
	assert.Equal(t, "127.0.0.1:1234", c.Addr)
}
