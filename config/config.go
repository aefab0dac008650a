package config

import (
	"flag"
	"os"
	"sync"
)

const (
	defaultServerAddress     = ":8080"
	defaultMongoURI          = "mongodb://localhost:27017"
	defaultMongoDatabase     = "shop"
	defaultSessionCookieName = "shopkit_admin"
	defaultLogLevel          = "debug"
)

type Config struct {
	ServerAddr        string
	MongoURI          string
	MongoDatabase     string
	SessionPassword   string
	SessionCookieName string
	LogLevel          string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "admin panel server address")
		flag.StringVar(&cfg.MongoURI, "d", defaultMongoURI, "mongodb connection URI")
		flag.StringVar(&cfg.MongoDatabase, "n", defaultMongoDatabase, "mongodb database name")
		flag.StringVar(&cfg.SessionCookieName, "c", defaultSessionCookieName, "session cookie name")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if mongoURIEnv := os.Getenv("MONGODB_URI"); mongoURIEnv != "" {
			cfg.MongoURI = mongoURIEnv
		}
		if mongoDBEnv := os.Getenv("MONGODB_DATABASE"); mongoDBEnv != "" {
			cfg.MongoDatabase = mongoDBEnv
		}
		if sessionPasswordEnv := os.Getenv("SESSION_OPTION_PASSWORD"); sessionPasswordEnv != "" {
			cfg.SessionPassword = sessionPasswordEnv
		}
		if cookieNameEnv := os.Getenv("SESSION_OPTION_COOKIE_NAME"); cookieNameEnv != "" {
			cfg.SessionCookieName = cookieNameEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}

		singleton = &cfg
	})

	return singleton, nil
}
