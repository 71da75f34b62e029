// Package config reads runtime settings from the environment, after loading
// a .env file when one is present.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the resolved set of settings for one process.
type Config struct {
	SaveFile     string // stats save file
	HistoryDB    string // SQLite file for round history; empty disables it
	LogLevel     string // zerolog level name; empty means the mode default
	Port         string // HTTP port for serve mode
	ClientOrigin string // allowed CORS origin
	DailySalt    string // HMAC salt for the daily challenge
	Difficulty   string // starting difficulty for the menu
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		SaveFile:     getEnv("SAVE_FILE", "./persistent"),
		HistoryDB:    os.Getenv("HISTORY_DB"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		Difficulty:   getEnv("DIFFICULTY", "easy"),
	}
}

// HistoryPath returns HISTORY_DB, defaulting to ./data/numguess.db when the
// variable is unset. Setting it to "off" disables history.
func (c Config) HistoryPath() string {
	switch c.HistoryDB {
	case "":
		return "./data/numguess.db"
	case "off":
		return ""
	}
	return c.HistoryDB
}

// Level parses LogLevel, falling back to def when unset or invalid.
func (c Config) Level(def zerolog.Level) zerolog.Level {
	if c.LogLevel == "" {
		return def
	}
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		return lvl
	}
	return def
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
