package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName  string `json:"appname"`
	AppEnv   string `json:"appenv"`
	AppPort  uint16 `json:"appport"`
	GinMode  string `json:"ginmode"`
	DBDriver string `json:"dbdriver"`
	DBFile   string `json:"dbfile"`
	DBHost   string `json:"dbhost"`
	DBPort   uint16 `json:"dbport"`
	DBName   string `json:"dbname"`
	DBUser   string `json:"dbuser"`
	DBPass   string `json:"dbpass"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file when present,
// and returns a singleton Config instance. Missing .env is not an error so
// the process can run from a plain environment (tests, containers).
func LoadConfig() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 5000
		}
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		config = &Config{
			AppName:  getEnv("APPNAME", "appointment-api"),
			AppEnv:   os.Getenv("APPENV"),
			AppPort:  uint16(appPort),
			GinMode:  getEnv("GINMODE", "debug"),
			DBDriver: getEnv("DBDRIVER", "sqlite"),
			DBFile:   getEnv("DBFILE", "appointments.db"),
			DBHost:   os.Getenv("DBHOST"),
			DBPort:   uint16(dbPort),
			DBName:   os.Getenv("DBNAME"),
			DBUser:   os.Getenv("DBUSER"),
			DBPass:   os.Getenv("DBPASS"),
		}
	})
	return config
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// ConnectDatabase opens the relational store based on the configured driver.
// The default is a single SQLite file; MySQL is selected with DBDRIVER=mysql.
// In the test environment an in-memory SQLite database is used regardless of
// driver so tests never touch a real server.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()

	if os.Getenv("APPENV") == "test" || cfg.AppEnv == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBFile), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
}
