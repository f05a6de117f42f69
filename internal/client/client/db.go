package client

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophdiary/internal/client/migrations"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// goose keeps its base FS, dialect and logger in package globals.
var migrateMu sync.Mutex

// migrationLogger routes goose output into a logging.Logger so progress
// lines stay off stderr unless debug logging is on.
type migrationLogger struct {
	ctx context.Context
	log logging.Logger
}

func (m migrationLogger) Printf(format string, v ...interface{}) {
	m.log.Debug(m.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (m migrationLogger) Fatalf(format string, v ...interface{}) {
	m.log.Error(m.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

// RunMigrations applies the embedded cookie store migrations. A nil log
// discards goose output.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	if log == nil {
		log = logging.Nop()
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(migrationLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the cookie store at dsn, creating its directory when
// needed, and migrates it.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("create cookie store dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection keeps :memory: databases and transactions consistent
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
