// Package config provides configuration loading and defaults for mindhub.
package config

import "time"

// DefaultConfigDir is the default location for mindhub configuration.
const DefaultConfigDir = "~/.config/mindhub"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "mindhub.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultEnvFile is read from the working directory before the config file.
const DefaultEnvFile = ".env"

// EnvPrefix prefixes environment overrides, e.g. MINDHUB_SERVER_ADDR.
const EnvPrefix = "MINDHUB"

// DefaultSimulator holds the default conversation simulator settings.
var DefaultSimulator = Simulator{
	Interval:     8 * time.Second,
	HistoryLimit: 200,
}

// DefaultAdmin holds the demo portal account and session settings.
var DefaultAdmin = Admin{
	Username:       "admin",
	Password:       "password",
	TokenTTL:       8 * time.Hour,
	LoginPerMinute: 5,
	LoginBurst:     5,
}

// DefaultServer holds the default HTTP listener settings.
var DefaultServer = Server{
	Addr:            "127.0.0.1:8080",
	ShutdownTimeout: 10 * time.Second,
}

// DefaultHotline holds the simulated call settings.
var DefaultHotline = Hotline{
	CallDuration: 15 * time.Second,
}

// DefaultQuotes holds the quote rotation settings.
var DefaultQuotes = Quotes{
	Interval: 20 * time.Second,
}

// DefaultDashboard holds the insight dashboard settings.
var DefaultDashboard = Dashboard{
	DefaultRange: "week",
}

// DefaultLog holds the default logging settings.
var DefaultLog = Log{
	Level:  "info",
	Format: "text",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
