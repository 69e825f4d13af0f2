package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// InsertBatch appends entries in one transaction. Entries without an ID get a
// fresh UUID.
func (r *EventRepo) InsertBatch(ctx context.Context, entries []JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO events (id, at, day, goal, kind, amount, detail)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("event prepare: %w", err)
		}
		defer stmt.Close()

		for i := range entries {
			e := &entries[i]
			if e.ID == "" {
				e.ID = uuid.NewString()
			}
			if _, err := stmt.ExecContext(ctx, e.ID, e.At.UTC(), e.Day, e.Goal, e.Kind, e.Amount, e.Detail); err != nil {
				return fmt.Errorf("event insert: %w", err)
			}
		}
		return nil
	})
}

// ListRecent returns the newest entries first.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, at, day, goal, kind, amount, detail
		FROM events
		ORDER BY at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("event list: %w", err)
	}
	return scanEntries(rows)
}

func (r *EventRepo) ListByGoal(ctx context.Context, goal string, limit int) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, at, day, goal, kind, amount, detail
		FROM events
		WHERE goal = ?
		ORDER BY at DESC, rowid DESC
		LIMIT ?
	`, goal, limit)
	if err != nil {
		return nil, fmt.Errorf("event list by goal: %w", err)
	}
	return scanEntries(rows)
}

// SumByDay totals amount per day for the given kinds on or after sinceDay.
func (r *EventRepo) SumByDay(ctx context.Context, sinceDay string, kinds ...string) (map[string]int, error) {
	if len(kinds) == 0 {
		return map[string]int{}, nil
	}
	args := []any{sinceDay}
	for _, k := range kinds {
		args = append(args, k)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(kinds)), ",")

	rows, err := r.db.QueryContext(ctx, `
		SELECT day, SUM(amount)
		FROM events
		WHERE day >= ? AND kind IN (`+placeholders+`)
		GROUP BY day
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("event sum by day: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var day string
		var sum int
		if err := rows.Scan(&day, &sum); err != nil {
			return nil, fmt.Errorf("event sum scan: %w", err)
		}
		out[day] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event sum rows: %w", err)
	}
	return out, nil
}

func scanEntries(rows *sql.Rows) ([]JournalEntry, error) {
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.At, &e.Day, &e.Goal, &e.Kind, &e.Amount, &e.Detail); err != nil {
			return nil, fmt.Errorf("event scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event rows: %w", err)
	}
	return out, nil
}
