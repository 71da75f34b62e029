// internal/history/history.go
//
// Round history: one row per finished round, newest first on read.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robalobadob/numguess/internal/game"
)

// DefaultLimit is used by Recent when limit <= 0.
const DefaultLimit = 10

// timeLayout is fixed-width so finished_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is a finished round as stored in the rounds table.
type Entry struct {
	ID         string    `json:"id"`
	Difficulty string    `json:"difficulty"`
	Answer     int       `json:"answer"`
	Guesses    int       `json:"guesses"`
	Won        bool      `json:"won"`
	FirstTry   bool      `json:"firstTry"`
	Daily      string    `json:"daily,omitempty"`
	FinishedAt time.Time `json:"finishedAt"`
}

// FromRound builds an Entry for a finished round.
func FromRound(r *game.Round, at time.Time) Entry {
	return Entry{
		ID:         r.ID,
		Difficulty: string(r.Difficulty),
		Answer:     r.Answer,
		Guesses:    len(r.Guesses),
		Won:        r.Won,
		FirstTry:   r.FirstTry(),
		Daily:      r.Daily,
		FinishedAt: at.UTC(),
	}
}

// Store reads and writes round history.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert adds e. Re-inserting an existing ID is ignored.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	var daily any
	if e.Daily != "" {
		daily = e.Daily
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO rounds
            (id, difficulty, answer, guesses, won, first_try, daily, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Difficulty, e.Answer, e.Guesses, e.Won, e.FirstTry, daily,
		e.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Recent returns up to limit entries, most recently finished first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, difficulty, answer, guesses, won, first_try, COALESCE(daily, ''), finished_at
        FROM rounds
        ORDER BY finished_at DESC, id ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var finished string
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Answer, &e.Guesses, &e.Won, &e.FirstTry, &e.Daily, &finished); err != nil {
			return nil, err
		}
		at, err := time.Parse(timeLayout, finished)
		if err != nil {
			return nil, fmt.Errorf("round %s finished_at: %w", e.ID, err)
		}
		e.FinishedAt = at
		out = append(out, e)
	}
	return out, rows.Err()
}

// PlayedDaily reports whether a round for the daily challenge of date
// (YYYY-MM-DD) has already been finished.
func (s *Store) PlayedDaily(ctx context.Context, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM rounds WHERE daily=?`, date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}
