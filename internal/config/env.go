package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by Word Hunt.
const (
	EnvConfig    = "WORDHUNT_CONFIG"
	EnvDB        = "WORDHUNT_DB"
	EnvLogLevel  = "WORDHUNT_LOG_LEVEL"
	EnvWordsFile = "WORDHUNT_WORDS_FILE"
)

// Env holds settings taken from the environment.
type Env struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
	WordsFile  string
}

// LoadEnv loads the given .env files (./.env when none are given) without
// overriding variables that are already set, then reads the Word Hunt
// variables. Missing .env files are not an error.
func LoadEnv(files ...string) Env {
	_ = godotenv.Load(files...)

	return Env{
		ConfigPath: os.Getenv(EnvConfig),
		DBPath:     os.Getenv(EnvDB),
		LogLevel:   os.Getenv(EnvLogLevel),
		WordsFile:  os.Getenv(EnvWordsFile),
	}
}

// Or returns value when set, otherwise fallback.
func Or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
