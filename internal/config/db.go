package config

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
	dsn  string
)

// ErrNoDSN means settings persistence is disabled.
var ErrNoDSN = errors.New("DB_DSN not configured")

// ConnectDB initializes the shared DB connection (idempotent).
// The DSN is normalized so DATETIME columns scan into time.Time.
func ConnectDB(rawDSN string) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}
	if rawDSN == "" {
		return nil, ErrNoDSN
	}
	dsn = rawDSN

	cfg, err := mysql.ParseDSN(rawDSN)
	if err != nil {
		return nil, err
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	DB = db
	log.Println("connected to MySQL")
	return DB, nil
}

// EnsureDB pings the shared connection, reconnecting when it was never opened.
func EnsureDB(ctx context.Context) error {
	dbMu.Lock()
	current, raw := DB, dsn
	dbMu.Unlock()

	if current == nil {
		if raw == "" {
			return ErrNoDSN
		}
		_, err := ConnectDB(raw)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return current.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
