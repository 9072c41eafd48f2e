package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"padhobadho/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// golang-migrate ships no Oracle database driver, so Migrator pairs its iofs
// source with version tracking in a schema_migrations table of the same shape.
type Migrator struct {
	db  *sqlx.DB
	src source.Driver
}

// NewMigrator reads the migrations embedded in the binary.
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	return NewMigratorFromFS(db, migrationFiles, "migrations")
}

func NewMigratorFromFS(db *sqlx.DB, fsys fs.FS, dir string) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}
	return &Migrator{db: db, src: src}, nil
}

func (m *Migrator) Close() error {
	return m.src.Close()
}

// Version returns the applied version; ok is false when nothing has been applied.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, ok bool, err error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, false, false, err
	}
	var row struct {
		Version int64 `db:"VERSION"`
		Dirty   bool  `db:"DIRTY"`
	}
	err = m.db.GetContext(ctx, &row, `SELECT version "VERSION", dirty "DIRTY" FROM schema_migrations FETCH FIRST 1 ROWS ONLY`)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	return uint(row.Version), row.Dirty, true, nil
}

// Up applies every pending migration and reports how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, dirty, ok, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("database is dirty at version %d; fix it manually and force a version", current)
	}

	var next uint
	if ok {
		next, err = m.src.Next(current)
	} else {
		next, err = m.src.First()
	}

	applied := 0
	for err == nil {
		if errApply := m.apply(ctx, next, true); errApply != nil {
			return applied, errApply
		}
		applied++
		current = next
		next, err = m.src.Next(current)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return applied, fmt.Errorf("failed to find next migration: %w", err)
	}
	return applied, nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	current, dirty, ok, err := m.Version(ctx)
	if err != nil {
		return err
	}
	if !ok {
		logger.Get().Info("No migrations to roll back")
		return nil
	}
	if dirty {
		return fmt.Errorf("database is dirty at version %d; fix it manually and force a version", current)
	}
	return m.apply(ctx, current, false)
}

// Force records version as applied and clean without running anything.
func (m *Migrator) Force(ctx context.Context, version uint) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}
	return m.setVersion(ctx, version, false)
}

func (m *Migrator) apply(ctx context.Context, version uint, up bool) error {
	var (
		body       io.ReadCloser
		identifier string
		err        error
	)
	if up {
		body, identifier, err = m.src.ReadUp(version)
	} else {
		body, identifier, err = m.src.ReadDown(version)
	}
	if err != nil {
		return fmt.Errorf("failed to read migration %d: %w", version, err)
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read migration %d: %w", version, err)
	}

	// Oracle DDL commits implicitly, so the dirty flag marks a half-applied migration.
	if err := m.setVersion(ctx, version, true); err != nil {
		return err
	}
	for _, stmt := range SplitStatements(string(content)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", version, identifier, err)
		}
	}

	direction := "up"
	if up {
		err = m.setVersion(ctx, version, false)
	} else {
		direction = "down"
		prev, errPrev := m.src.Prev(version)
		switch {
		case errPrev == nil:
			err = m.setVersion(ctx, prev, false)
		case errors.Is(errPrev, fs.ErrNotExist):
			_, err = m.db.ExecContext(ctx, `DELETE FROM schema_migrations`)
		default:
			err = errPrev
		}
	}
	if err != nil {
		return fmt.Errorf("failed to record migration %d: %w", version, err)
	}

	logger.Get().Info("Executed migration",
		zap.Uint("version", version),
		zap.String("name", identifier),
		zap.String("direction", direction))
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	if err := m.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("failed to check schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL PRIMARY KEY, dirty NUMBER(1) NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) setVersion(ctx context.Context, version uint, dirty bool) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return fmt.Errorf("failed to clear schema_migrations: %w", err)
	}
	if _, err := m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (:1, :2)`, int64(version), dirty); err != nil {
		return fmt.Errorf("failed to write schema_migrations: %w", err)
	}
	return nil
}

// SplitStatements splits a migration file into single statements, since Oracle
// drivers execute one statement per call. A statement ends at a line ending in ';'.
// Lines starting with "--" are dropped.
func SplitStatements(content string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			stmts = append(stmts, s)
		}
		current.Reset()
	}
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(strings.TrimRight(line, " \t\r"), ";"))
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()
	return stmts
}
