package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"account_backend/internal/feature/accounts/domain/entity"
)

// Config holds the connection parameters read from the environment.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName selects a Cloud SQL unix socket connection when set.
	InstanceName string
}

// BuildDSN assembles a Postgres DSN from the config. When InstanceName is
// set the Cloud SQL socket path takes precedence over Host/Port.
func BuildDSN(cfg Config) string {
	host := cfg.Host
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
			host, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener abstracts gorm.Open so connection retry logic can be tested
// without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry opens a database connection, retrying every 3 seconds
// until it succeeds or the timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to Postgres using the DB_* environment variables and
// optionally runs migrations. TranslateError is enabled so duplicate-key
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func OpenDB() *gorm.DB {
	cfg := Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
	dsn := BuildDSN(cfg)

	db, err := ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
