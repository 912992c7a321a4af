package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr     string
	APIBaseURL     string
	APIPrefix      string
	APIToken       string
	APITimeout     time.Duration
	AllowedOrigins []string
	LogLevel       logrus.Level
	PostgresDSN    string
	GRPCHealthAddr string
	DeleteTTL      time.Duration
}

// APIEndpoint is the base every catalog API path is appended to.
func (c Config) APIEndpoint() string {
	prefix := strings.Trim(c.APIPrefix, "/")
	base := strings.TrimRight(c.APIBaseURL, "/")
	if prefix == "" {
		return base
	}
	return base + "/" + prefix
}

func defaults(v *viper.Viper) {
	v.SetDefault("ADMIN_ADDR", ":8080")
	v.SetDefault("CATALOG_API_URL", "")
	v.SetDefault("CATALOG_API_PREFIX", "/api")
	v.SetDefault("CATALOG_API_TOKEN", "")
	v.SetDefault("CATALOG_API_TIMEOUT", "15s")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("GRPC_HEALTH_ADDR", "")
	v.SetDefault("DELETE_CONFIRM_TTL", "5m")
}

// Load reads .env (if present), the environment and then the command line
// flags in args, later sources winning.
func Load(args []string) (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	v := viper.New()
	defaults(v)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("admin", pflag.ContinueOnError)
	fs.String("addr", "", "listen address (ADMIN_ADDR)")
	fs.String("api-url", "", "catalog API base URL (CATALOG_API_URL)")
	fs.String("log-level", "", "log level (LOG_LEVEL)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	_ = v.BindPFlag("ADMIN_ADDR", fs.Lookup("addr"))
	_ = v.BindPFlag("CATALOG_API_URL", fs.Lookup("api-url"))
	_ = v.BindPFlag("LOG_LEVEL", fs.Lookup("log-level"))

	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := Config{
		ListenAddr:     v.GetString("ADMIN_ADDR"),
		APIBaseURL:     strings.TrimSpace(v.GetString("CATALOG_API_URL")),
		APIPrefix:      v.GetString("CATALOG_API_PREFIX"),
		APIToken:       v.GetString("CATALOG_API_TOKEN"),
		APITimeout:     v.GetDuration("CATALOG_API_TIMEOUT"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:       level,
		PostgresDSN:    v.GetString("POSTGRES_DSN"),
		GRPCHealthAddr: v.GetString("GRPC_HEALTH_ADDR"),
		DeleteTTL:      v.GetDuration("DELETE_CONFIRM_TTL"),
	}
	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("CATALOG_API_URL is required")
	}
	if cfg.DeleteTTL <= 0 {
		cfg.DeleteTTL = 5 * time.Minute
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Print logs the effective configuration without secrets.
func (c Config) Print(log *logrus.Logger) {
	log.WithFields(logrus.Fields{
		"addr":        c.ListenAddr,
		"api":         c.APIEndpoint(),
		"api_timeout": c.APITimeout.String(),
		"token_set":   c.APIToken != "",
		"origins":     c.AllowedOrigins,
		"audit_db":    c.PostgresDSN != "",
		"grpc_health": c.GRPCHealthAddr,
		"delete_ttl":  c.DeleteTTL.String(),
		"log_level":   c.LogLevel.String(),
	}).Info("[config] loaded")
}
