package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level mindhub configuration.
type Config struct {
	Simulator Simulator `mapstructure:"simulator"`
	Admin     Admin     `mapstructure:"admin"`
	Server    Server    `mapstructure:"server"`
	Hotline   Hotline   `mapstructure:"hotline"`
	Quotes    Quotes    `mapstructure:"quotes"`
	Dashboard Dashboard `mapstructure:"dashboard"`
	Store     Store     `mapstructure:"store"`
	Log       Log       `mapstructure:"log"`
	Output    Output    `mapstructure:"output"`
}

// Simulator configures the conversation simulator.
type Simulator struct {
	Interval     time.Duration `mapstructure:"interval"`
	HistoryLimit int           `mapstructure:"history_limit"`
	// Seed fixes the message sequence. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

// Admin configures the demo admin portal. PasswordHash, when set, takes
// precedence over Password.
type Admin struct {
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	PasswordHash   string        `mapstructure:"password_hash"`
	TokenSecret    string        `mapstructure:"token_secret"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	LoginPerMinute int           `mapstructure:"login_per_minute"`
	LoginBurst     int           `mapstructure:"login_burst"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Hotline configures the simulated support call.
type Hotline struct {
	CallDuration time.Duration `mapstructure:"call_duration"`
}

// Quotes configures quote rotation.
type Quotes struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Dashboard configures the insight dashboard.
type Dashboard struct {
	DefaultRange string `mapstructure:"default_range"`
}

// Store configures the provider directory database.
type Store struct {
	// Path overrides the database location. Empty uses DBPath().
	Path string `mapstructure:"path"`
}

// Log configures structured logging.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// loadEnvFile exports the variables in path without overriding ones that
// are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Variables from .env in
// the working directory and MINDHUB_* environment variables override the
// file.
func Load(cfgFile string) (*Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("simulator.interval", DefaultSimulator.Interval)
	v.SetDefault("simulator.history_limit", DefaultSimulator.HistoryLimit)
	v.SetDefault("simulator.seed", DefaultSimulator.Seed)
	v.SetDefault("admin.username", DefaultAdmin.Username)
	v.SetDefault("admin.password", DefaultAdmin.Password)
	v.SetDefault("admin.password_hash", DefaultAdmin.PasswordHash)
	v.SetDefault("admin.token_secret", DefaultAdmin.TokenSecret)
	v.SetDefault("admin.token_ttl", DefaultAdmin.TokenTTL)
	v.SetDefault("admin.login_per_minute", DefaultAdmin.LoginPerMinute)
	v.SetDefault("admin.login_burst", DefaultAdmin.LoginBurst)
	v.SetDefault("server.addr", DefaultServer.Addr)
	v.SetDefault("server.shutdown_timeout", DefaultServer.ShutdownTimeout)
	v.SetDefault("hotline.call_duration", DefaultHotline.CallDuration)
	v.SetDefault("quotes.interval", DefaultQuotes.Interval)
	v.SetDefault("dashboard.default_range", DefaultDashboard.DefaultRange)
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", DefaultLog.Level)
	v.SetDefault("log.format", DefaultLog.Format)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Store.Path = expandPath(cfg.Store.Path)
	return &cfg, nil
}

// DatabasePath returns the configured database location, falling back to
// DBPath.
func (c *Config) DatabasePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DBPath()
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
