package config

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds the postgres DSN for cfg.Env from the <ENV>_DB_* variables
func (cfg Config) DSN() (string, error) {
	var prefix string
	switch cfg.Env {
	case "dev", "qc", "prod", "local":
		prefix = strings.ToUpper(cfg.Env) + "_DB_"
	default:
		return "", fmt.Errorf("unknown environment: %s", cfg.Env)
	}

	user := os.Getenv(prefix + "USER")
	password := os.Getenv(prefix + "PASSWORD")
	host := os.Getenv(prefix + "HOST")
	port := os.Getenv(prefix + "PORT")
	name := os.Getenv(prefix + "NAME")
	if host == "" || name == "" {
		return "", fmt.Errorf("%sHOST and %sNAME must be set", prefix, prefix)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, name, port, cfg.DBSSLMode, cfg.DBTimeZone), nil
}

// ConnectDB opens the database described by cfg
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	return db, nil
}
