// Package sqlite provides a single-file event store backed by modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/storage"
	"github.com/sympohub/dashboard/migrations"
)

// Store is a SQLite-backed event store.
type Store struct {
	db *sql.DB
}

var _ dashboard.EventSource = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, db, migrations.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenDB opens the database file without touching its schema.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database file is still usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO events (id, name, start_date, participant_count, status)
VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt,
		event.ID,
		event.Name,
		event.StartDateString(),
		event.ParticipantCount,
		string(event.Status),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrEventAlreadyExists
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// CreateEvents inserts all events in one transaction.
func (s *Store) CreateEvents(ctx context.Context, events []domain.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	const stmt = `
INSERT INTO events (id, name, start_date, participant_count, status)
VALUES (?, ?, ?, ?, ?)`
	for _, event := range events {
		if _, err := tx.ExecContext(ctx, stmt,
			event.ID,
			event.Name,
			event.StartDateString(),
			event.ParticipantCount,
			string(event.Status),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("create event %s: %w", event.ID, err)
		}
	}
	return tx.Commit()
}

func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT id, name, start_date, participant_count, status
FROM events
ORDER BY start_date DESC, created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows, dashboard.DefaultRecentEventsQuery().Fields, 0)
}

// RecentEvents implements dashboard.EventSource.
func (s *Store) RecentEvents(ctx context.Context, q dashboard.RecentEventsQuery) ([]domain.Event, error) {
	if err := storage.ValidateRecentEventsQuery(q); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, storage.RecentEventsSQL(q, "?"), q.Limit)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows, q.Fields, q.Limit)
}

func scanEvents(rows *sql.Rows, fields []string, capacity int) ([]domain.Event, error) {
	events := make([]domain.Event, 0, capacity)
	for rows.Next() {
		var (
			event     domain.Event
			startDate string
			status    string
		)
		targets := make([]any, len(fields))
		for i, field := range fields {
			switch field {
			case dashboard.FieldID:
				targets[i] = &event.ID
			case dashboard.FieldName:
				targets[i] = &event.Name
			case dashboard.FieldStartDate:
				targets[i] = &startDate
			case dashboard.FieldParticipantCount:
				targets[i] = &event.ParticipantCount
			case dashboard.FieldStatus:
				targets[i] = &status
			default:
				return nil, fmt.Errorf("%w: %q", storage.ErrUnsupportedField, field)
			}
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if startDate != "" {
			parsed, err := time.Parse(domain.DateLayout, startDate)
			if err != nil {
				return nil, fmt.Errorf("scan event %s start_date: %w", event.ID, err)
			}
			event.StartDate = parsed
		}
		if status != "" {
			parsed, err := domain.ParseEventStatus(status)
			if err != nil {
				return nil, fmt.Errorf("scan event %s: %w", event.ID, err)
			}
			event.Status = parsed
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
