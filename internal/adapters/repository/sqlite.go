package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
)

// SQLiteStore implements Source over the portal's sqlite database.
type SQLiteStore struct {
	db *sql.DB

	maxOpenConns int
}

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithMaxOpenConns bounds the underlying connection pool.
func WithMaxOpenConns(n int) Option {
	return func(s *SQLiteStore) {
		if n > 0 {
			s.maxOpenConns = n
		}
	}
}

// NewSQLiteStore opens the database at dsn. Use ":memory:" for tests.
func NewSQLiteStore(dsn string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{
		maxOpenConns: 8,
	}

	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(s.maxOpenConns)
	s.db = db

	return s, nil
}

// Migrate creates the schema if it does not exist. The portal owns these
// tables in production; this exists for the seed tool and tests.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id             INTEGER PRIMARY KEY,
		name           TEXT NOT NULL,
		email          TEXT NOT NULL DEFAULT '',
		department     TEXT NOT NULL DEFAULT '',
		academic_title TEXT NOT NULL DEFAULT '',
		role           TEXT NOT NULL DEFAULT 'member',
		active         INTEGER NOT NULL DEFAULT 1
	);
	CREATE TABLE IF NOT EXISTS activities (
		id       INTEGER PRIMARY KEY,
		user_id  INTEGER NOT NULL,
		category TEXT NOT NULL,
		title    TEXT NOT NULL DEFAULT '',
		year     INTEGER NOT NULL DEFAULT 0,
		status   TEXT NOT NULL DEFAULT '',
		kind     TEXT NOT NULL DEFAULT '',
		level    TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_activities_user_category
		ON activities (user_id, category);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate sqlite store: %w", err)
	}
	return nil
}

// FetchCategoryRecords returns one user's rows for one category.
func (s *SQLiteStore) FetchCategoryRecords(ctx context.Context, userID int64, cat category.Category) ([]model.ActivityRecord, error) {
	const query = `
		SELECT id, user_id, title, year, status, kind, level
		FROM activities
		WHERE user_id = ? AND category = ?
		ORDER BY year DESC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID, cat.String())
	if err != nil {
		return nil, fmt.Errorf("query %s records: %w", cat, err)
	}
	defer rows.Close()

	var records []model.ActivityRecord
	for rows.Next() {
		rec := model.ActivityRecord{Category: cat}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Year, &rec.Status, &rec.Kind, &rec.Level); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", cat, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s records: %w", cat, err)
	}
	return records, nil
}

// ListEligibleUsers returns the ranking population. Inactive accounts,
// administrators, and accounts missing a name or email are excluded.
func (s *SQLiteStore) ListEligibleUsers(ctx context.Context) ([]model.User, error) {
	const query = `
		SELECT id, name, department, academic_title
		FROM users
		WHERE active = 1 AND role != 'admin' AND name != '' AND email != ''
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query eligible users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Department, &u.AcademicTitle); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// AddUser inserts a directory row. Used by the seed tool and tests.
func (s *SQLiteStore) AddUser(ctx context.Context, u model.User, email, role string, active bool) error {
	const query = `
		INSERT INTO users (id, name, email, department, academic_title, role, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	activeInt := 0
	if active {
		activeInt = 1
	}
	if _, err := s.db.ExecContext(ctx, query, u.ID, u.Name, email, u.Department, u.AcademicTitle, role, activeInt); err != nil {
		return fmt.Errorf("insert user %d: %w", u.ID, err)
	}
	return nil
}

// AddActivity inserts an activity row. Used by the seed tool and tests.
func (s *SQLiteStore) AddActivity(ctx context.Context, rec model.ActivityRecord) error {
	const query = `
		INSERT INTO activities (user_id, category, title, year, status, kind, level)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, rec.UserID, rec.Category.String(), rec.Title, rec.Year, rec.Status, rec.Kind, rec.Level); err != nil {
		return fmt.Errorf("insert activity for user %d: %w", rec.UserID, err)
	}
	return nil
}

// Close releases the underlying pool.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close sqlite store: %w", err)
	}
	return nil
}
