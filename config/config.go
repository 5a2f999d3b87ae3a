package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`
	DBPath  string `json:"dbpath"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not fatal; values fall back to the process environment and defaults.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 8080
		}

		dbPath := os.Getenv("DBPATH")
		if dbPath == "" {
			dbPath = "healthcare.db"
		}

		ginMode := os.Getenv("GINMODE")
		if ginMode == "" {
			ginMode = "debug"
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName: os.Getenv("APPNAME"),
			AppEnv:  os.Getenv("APPENV"),
			AppPort: uint16(appPort),
			GinMode: ginMode,
			DBPath:  dbPath,
		}
	})
	return config
}

// ConnectSQLite opens the embedded SQLite store configured by DBPATH.
// The whole database is a single file on local disk; in the test
// environment an in-memory database is used instead.
func ConnectSQLite() (*gorm.DB, error) {
	cfg := LoadConfig()

	dsn := cfg.DBPath
	if cfg.AppEnv == "test" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
