package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/storage"
)

// EventRepository reads and writes the events table.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

var _ dashboard.EventSource = (*EventRepository)(nil)

func (r *EventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO events (id, name, start_date, participant_count, status)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.exec(ctx, stmt,
		event.ID,
		event.Name,
		event.StartDate,
		event.ParticipantCount,
		string(event.Status),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if isUniqueViolation(err) {
			return domain.ErrEventAlreadyExists
		}
		if constraint, ok := checkViolation(err); ok {
			switch constraint {
			case "events_participant_count_check":
				return domain.ErrInvalidParticipantCount
			case "events_status_check":
				return domain.ErrInvalidStatus
			case "events_name_check":
				return domain.ErrEventNameRequired
			}
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// CreateEvents inserts all events in one transaction.
func (r *EventRepository) CreateEvents(ctx context.Context, events []domain.Event) error {
	return r.WithTx(ctx, func(ctx context.Context) error {
		for _, event := range events {
			if err := r.CreateEvent(ctx, event); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT id, name, start_date, participant_count, status
FROM events
ORDER BY start_date DESC, created_at DESC`
	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	fields := dashboard.DefaultRecentEventsQuery().Fields
	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows, fields)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

// RecentEvents implements dashboard.EventSource.
func (r *EventRepository) RecentEvents(ctx context.Context, q dashboard.RecentEventsQuery) ([]domain.Event, error) {
	if err := storage.ValidateRecentEventsQuery(q); err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, storage.RecentEventsSQL(q, "$1"), q.Limit)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, q.Limit)
	for rows.Next() {
		event, err := scanEvent(rows, q.Fields)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate recent events: %w", rows.Err())
	}
	return events, nil
}

func scanEvent(rows pgx.Rows, fields []string) (domain.Event, error) {
	var (
		event  domain.Event
		status string
	)
	targets := make([]any, len(fields))
	for i, field := range fields {
		switch field {
		case dashboard.FieldID:
			targets[i] = &event.ID
		case dashboard.FieldName:
			targets[i] = &event.Name
		case dashboard.FieldStartDate:
			targets[i] = &event.StartDate
		case dashboard.FieldParticipantCount:
			targets[i] = &event.ParticipantCount
		case dashboard.FieldStatus:
			targets[i] = &status
		default:
			return domain.Event{}, fmt.Errorf("%w: %q", storage.ErrUnsupportedField, field)
		}
	}
	if err := rows.Scan(targets...); err != nil {
		return domain.Event{}, fmt.Errorf("scan event: %w", err)
	}
	if status != "" {
		parsed, err := domain.ParseEventStatus(status)
		if err != nil {
			return domain.Event{}, fmt.Errorf("scan event %s: %w", event.ID, err)
		}
		event.Status = parsed
	}
	return event, nil
}

func (r *EventRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *EventRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
