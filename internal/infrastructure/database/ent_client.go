package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lingolog/lingolog/internal/infrastructure/config"
	entdb "github.com/lingolog/lingolog/internal/infrastructure/database/ent"
)

// NewEntClient constructs an ent.Client configured for the application's database.
func NewEntClient(cfg *config.Config) (*entdb.Client, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	switch driver {
	case "postgres":
		return newEntClient(cfg, dialect.Postgres, "postgres", dsn, nil)
	case "sqlite3":
		return newEntClient(cfg, dialect.SQLite, "sqlite3", dsn, func(ctx context.Context, rawDB *sql.DB) error {
			rawDB.SetMaxOpenConns(1)
			rawDB.SetMaxIdleConns(1)
			if _, err := rawDB.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
				return fmt.Errorf("enable sqlite foreign keys: %w", err)
			}
			return nil
		})
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func newEntClient(cfg *config.Config, entDialect, sqlDriver, dsn string, setup func(context.Context, *sql.DB) error) (*entdb.Client, func(), error) {
	rawDB, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s db: %w", sqlDriver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setup != nil {
		if err := setup(ctx, rawDB); err != nil {
			rawDB.Close()
			return nil, nil, err
		}
	}
	if err := rawDB.PingContext(ctx); err != nil {
		rawDB.Close()
		return nil, nil, fmt.Errorf("ping %s db: %w", sqlDriver, err)
	}

	driver := entsql.OpenDB(entDialect, rawDB)
	client := entdb.NewClient(entdb.Driver(driver))
	if cfg.Database.LogSQL {
		client = client.Debug()
	}

	return client, func() {
		_ = client.Close()
	}, nil
}
