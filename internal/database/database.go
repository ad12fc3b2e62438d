package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/rs/zerolog/log"

	appconfig "github.com/connectik/connectik_api/internal/config"
)

const (
	connectAttempts = 5
	firstRetryDelay = 500 * time.Millisecond
	maxRetryDelay   = 5 * time.Second
	pingTimeout     = 5 * time.Second
	connMaxLifetime = 30 * time.Minute
)

// Connect opens the catalog database and pings it. Boutique deployments often
// start the API next to a Postgres container that is not accepting
// connections yet, so failed pings are retried with a doubling delay until
// ctx is done or the attempts run out.
func Connect(ctx context.Context, cfg *appconfig.DatabaseConfig) (*sqlx.DB, error) {
	if cfg == nil {
		return nil, errors.New("nil database config")
	}

	db, err := sqlx.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	configurePool(db, cfg)

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return db, nil
		}
		if attempt == connectAttempts {
			break
		}

		delay := retryDelay(attempt)
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("database not ready")
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("connect to database: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", connectAttempts, err)
}

// DSN returns cfg.URL when set, otherwise a postgres:// URL built from the
// individual fields with the credentials escaped.
func DSN(cfg *appconfig.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host,
		Path:   "/" + cfg.Name,
	}
	if cfg.Port != "" {
		u.Host = cfg.Host + ":" + cfg.Port
	}
	if cfg.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}
	return u.String()
}

func configurePool(db *sqlx.DB, cfg *appconfig.DatabaseConfig) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(connMaxLifetime)
}

// retryDelay doubles from firstRetryDelay and is capped at maxRetryDelay.
func retryDelay(attempt int) time.Duration {
	d := firstRetryDelay << (attempt - 1)
	if d <= 0 || d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
