package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Auth   AuthConfig   `mapstructure:"auth"`
	S3     S3Config     `mapstructure:"s3"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig controls the in-memory data store.
type StoreConfig struct {
	// Latency is the simulated round-trip applied to every asynchronous store call.
	Latency time.Duration `mapstructure:"latency"`
}

// AuthConfig defines the demo login.
type AuthConfig struct {
	DemoPassword string `mapstructure:"demo_password"`
	Token        string `mapstructure:"token"`
	// JWTSecret, when set, turns the fixed token into a signed JWT.
	JWTSecret string `mapstructure:"jwt_secret"`
}

// S3Config points at the bucket used for export archives. Archiving is disabled
// when BucketName is empty.
type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	URLExpiry       time.Duration `mapstructure:"url_expiry"`
}

// Enabled reports whether an archive bucket is configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// LoadConfig reads config.yaml from path, then applies environment overrides
// (server.address -> SERVER_ADDRESS, store.latency -> STORE_LATENCY, ...).
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("store.latency", "100ms")
	v.SetDefault("auth.demo_password", "password")
	v.SetDefault("auth.token", "mock-jwt-token")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.url_expiry", "15m")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and env vars still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	if config.Store.Latency < 0 {
		return config, errors.New("store.latency cannot be negative")
	}
	return config, nil
}
