package app

import (
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	LogLevel       string        `env:"LOG_LEVEL"`
	MigrationsPath string        `env:"MIGRATIONS_PATH"`
	EmailTLDs      string        `env:"EMAIL_TLDS"`
	BcryptCost     int           `env:"BCRYPT_COST"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
}

func NewConfigFromFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "Server address (env: RUN_ADDRESS)")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "Database URI (env: DATABASE_URI)")
	flag.StringVar(&cfg.LogLevel, "l", "info", "Log level (debug|info|warn|error) (env: LOG_LEVEL)")
	flag.StringVar(&cfg.MigrationsPath, "migrations", "./migrations", "Path to migrations folder (env: MIGRATIONS_PATH)")
	flag.StringVar(&cfg.EmailTLDs, "email-tlds", "com,net", "Comma-separated allow-list of email top-level domains (env: EMAIL_TLDS)")
	flag.IntVar(&cfg.BcryptCost, "bcrypt-cost", 10, "bcrypt work factor (env: BCRYPT_COST)")
	flag.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Session lifetime, 0 keeps sessions until logout (env: SESSION_TTL)")
	flag.Parse()

	if err := cfg.ApplyEnvVars(); err != nil {
		panic(fmt.Sprintf("Failed to parse environment: %v", err))
	}
	cfg.validate()

	return cfg
}

func (c *Config) ApplyEnvVars() error {
	return env.Parse(c)
}

func (c *Config) validate() {
	if c.DatabaseURI == "" {
		panic("Database URI is required (use -d flag or DATABASE_URI env)")
	}
}

// AllowedTLDs splits the configured allow-list into individual domains.
func (c *Config) AllowedTLDs() []string {
	var tlds []string
	for _, tld := range strings.Split(c.EmailTLDs, ",") {
		if tld = strings.TrimSpace(tld); tld != "" {
			tlds = append(tlds, tld)
		}
	}
	return tlds
}

func (c *Config) MaskDBPassword() string {
	u, err := url.Parse(c.DatabaseURI)
	if err != nil {
		return c.DatabaseURI
	}

	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
	}
	return u.String()
}
