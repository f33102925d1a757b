package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// SQLiteStore persists submissions in a local SQLite file. This is the
// default store for the standalone server surface, where no DynamoDB
// table is available.
type SQLiteStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

const createSubmissionsTable = `
	CREATE TABLE IF NOT EXISTS submissions (
		submission_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'New',
		created_at TEXT NOT NULL
	)`

// NewSQLiteStore opens the SQLite database at path, creating the file and
// the submissions table if they do not exist yet.
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logrus.New()
	}
	if path == "" {
		return nil, fmt.Errorf("sqlite store requires a database path")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", absPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite handles concurrent writers poorly; serialize through one connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if _, err := db.Exec(createSubmissionsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create submissions table: %w", err)
	}

	logger.WithField("path", absPath).Info("SQLite store initialized")

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Put implements RecordStore.Put
func (s *SQLiteStore) Put(ctx context.Context, sub *models.Submission) error {
	if sub == nil || sub.ID == "" {
		return NewStoreError("Put", "", ErrInvalidRecord)
	}

	query := `
		INSERT INTO submissions (
			submission_id, name, email, message, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Message,
		string(sub.Status),
		sub.CreatedAt,
	)
	if err != nil {
		s.logger.WithError(err).WithField("submission_id", sub.ID).Error("SQLite insert failed")
		return NewStoreError("Put", sub.ID, err)
	}
	return nil
}

// Get implements RecordStore.Get
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	query := `
		SELECT submission_id, name, email, message, status, created_at
		FROM submissions
		WHERE submission_id = ?`

	sub := &models.Submission{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID,
		&sub.Name,
		&sub.Email,
		&sub.Message,
		&sub.Status,
		&sub.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		s.logger.WithError(err).WithField("submission_id", id).Error("SQLite select failed")
		return nil, NewStoreError("Get", id, err)
	}
	return sub, nil
}

// ScanAll implements RecordStore.ScanAll
func (s *SQLiteStore) ScanAll(ctx context.Context) ([]*models.Submission, error) {
	query := `
		SELECT submission_id, name, email, message, status, created_at
		FROM submissions`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.WithError(err).Error("SQLite scan failed")
		return nil, NewStoreError("ScanAll", "", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub := &models.Submission{}
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Message,
			&sub.Status,
			&sub.CreatedAt,
		); err != nil {
			return nil, NewStoreError("ScanAll", "", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStoreError("ScanAll", "", err)
	}
	return subs, nil
}

// Close implements RecordStore.Close
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
