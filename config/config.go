package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port                     string        `mapstructure:"PORT"`
	Env                      string        `mapstructure:"ENV"`
	MongoURI                 string        `mapstructure:"MONGO_URI"`
	MongoDB                  string        `mapstructure:"MONGO_DB"`
	RedisAddr                string        `mapstructure:"REDIS_ADDR"`
	RedisPassword            string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB                  int           `mapstructure:"REDIS_DB"`
	CacheTTL                 time.Duration `mapstructure:"CACHE_TTL"`
	SecretKey                string        `mapstructure:"SECRET_KEY"`
	Algorithm                string        `mapstructure:"ALGORITHM"`
	AccessTokenExpireMinutes int           `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	AuthRequired             bool          `mapstructure:"AUTH_REQUIRED"`
	OllamaURL                string        `mapstructure:"OLLAMA_URL"`
	OllamaModel              string        `mapstructure:"OLLAMA_MODEL"`
	AITimeout                time.Duration `mapstructure:"AI_TIMEOUT"`
	CORSOrigins              []string      `mapstructure:"CORS_ORIGINS"`
	JobsEnabled              bool          `mapstructure:"JOBS_ENABLED"`
}

var keys = []string{
	"PORT", "ENV", "MONGO_URI", "MONGO_DB", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"CACHE_TTL", "SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES", "AUTH_REQUIRED",
	"OLLAMA_URL", "OLLAMA_MODEL", "AI_TIMEOUT", "CORS_ORIGINS", "JOBS_ENABLED",
}

/*
* Load .env into the process environment when present
* Read every key from the environment over the defaults
* Validate before returning
 */
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "production")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "hospital_db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "gemma3:1b")
	v.SetDefault("AI_TIMEOUT", "60s")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("JOBS_ENABLED", true)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// Validate refuses to start without a signing key outside development. In
// development a fixed key is filled in and a warning is logged.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		if !c.IsDev() {
			return fmt.Errorf("SECRET_KEY is required when ENV=%q", c.Env)
		}
		log.Warn().Msg("SECRET_KEY not set, using an insecure development key")
		c.SecretKey = "development-secret-key"
	}
	switch c.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("ALGORITHM must be HS256, HS384 or HS512, got %q", c.Algorithm)
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if c.MongoDB == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	return nil
}
