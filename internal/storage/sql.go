package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL backend for the snapshot table.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

// SQLOptions carries the per-dialect connection settings.
type SQLOptions struct {
	Dialect Dialect

	// SQLite
	SQLitePath string

	// MySQL (teacher DSN fields; InstanceConnectionName switches to the
	// Cloud SQL unix-socket form)
	MySQLUser              string
	MySQLPassword          string
	MySQLDatabase          string
	MySQLHost              string
	MySQLPort              string
	InstanceConnectionName string

	// Postgres
	PostgresDSN string
}

// SQLRepository stores the snapshot blob in a one-row key/value table.
type SQLRepository struct {
	dialect Dialect
	db      *sql.DB
}

// OpenSQL opens the configured SQL backend, pings it, and ensures the
// snapshot table exists.
func OpenSQL(ctx context.Context, opts SQLOptions) (*SQLRepository, error) {
	var driverName, dsn string

	switch opts.Dialect {
	case DialectSQLite:
		driverName = "sqlite"
		path := opts.SQLitePath
		if path == "" {
			path = filepath.Join("tmp", "gharjoy.sqlite")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		dsn = path
	case DialectMySQL:
		driverName = "mysql"
		if opts.InstanceConnectionName != "" {
			// Cloud Run: Cloud SQL Auth Proxy 経由（Unixソケット）
			dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?parseTime=true",
				opts.MySQLUser, opts.MySQLPassword, opts.InstanceConnectionName, opts.MySQLDatabase)
		} else {
			host := opts.MySQLHost
			if host == "" {
				host = "127.0.0.1"
			}
			port := opts.MySQLPort
			if port == "" {
				port = "3306"
			}
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
				opts.MySQLUser, opts.MySQLPassword, host, port, opts.MySQLDatabase)
		}
	case DialectPostgres:
		driverName = "pgx"
		if opts.PostgresDSN == "" {
			return nil, errors.New("postgres backend requires a DSN")
		}
		dsn = opts.PostgresDSN
	default:
		return nil, fmt.Errorf("unsupported snapshot dialect %q", opts.Dialect)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Dialect, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", opts.Dialect, err)
	}

	repo := &SQLRepository{dialect: opts.Dialect, db: db}
	if err := repo.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLRepository) createTable(ctx context.Context) error {
	payload := "TEXT"
	if r.dialect == DialectMySQL {
		payload = "LONGTEXT"
	}
	create := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS app_state (
			state_key VARCHAR(64) PRIMARY KEY,
			payload %s NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, payload)
	if _, err := r.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create app_state: %w", err)
	}
	return nil
}

func (r *SQLRepository) bind(pos int) string {
	if r.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (r *SQLRepository) Load(ctx context.Context) ([]byte, bool, error) {
	query := fmt.Sprintf("SELECT payload FROM app_state WHERE state_key = %s", r.bind(1))
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, StateKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	return payload, true, nil
}

func (r *SQLRepository) Save(ctx context.Context, blob []byte) error {
	var upsert string
	switch r.dialect {
	case DialectMySQL:
		upsert = `INSERT INTO app_state (state_key, payload, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at)`
	case DialectPostgres:
		upsert = `INSERT INTO app_state (state_key, payload, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (state_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	default:
		upsert = `INSERT INTO app_state (state_key, payload, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(state_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	}
	if _, err := r.db.ExecContext(ctx, upsert, StateKey, string(blob), time.Now().UTC()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}
