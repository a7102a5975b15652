package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret    string
		TokenTTL     time.Duration
		CookieName   string
		CookieSecure bool
	}
	Hashing struct {
		Cost    int
		Workers int
	}
	Log struct {
		Level  string
		Format string
	}
	CORS struct {
		AllowOrigin string
	}
}

// Load reads configuration from environment variables, an optional .env file
// and an optional config file in the working directory.
func Load() (Config, error) {
	// variables already present in the environment take precedence
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SCHOOLIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("server.readtimeout", 15*time.Second)
	v.SetDefault("server.writetimeout", 15*time.Second)
	v.SetDefault("database.path", "data/schoolify.db")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttl", 7*24*time.Hour)
	v.SetDefault("auth.cookiename", "token")
	v.SetDefault("auth.cookiesecure", true)
	v.SetDefault("hashing.cost", 10)
	v.SetDefault("hashing.workers", runtime.NumCPU())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.alloworigin", "*")
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth jwt secret is required (SCHOOLIFY_AUTH_JWTSECRET)")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth token ttl must be positive")
	}
	if c.Hashing.Cost < 4 || c.Hashing.Cost > 31 {
		return fmt.Errorf("hashing cost must be between 4 and 31, got %d", c.Hashing.Cost)
	}
	return nil
}
