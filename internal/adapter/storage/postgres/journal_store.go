package postgres

import (
	"context"
	"fmt"

	"atm-transaction-core/internal/core/domain"
)

// journalSchema is the append-only journal table. There is no UPDATE or
// DELETE path anywhere in this package.
const journalSchema = `CREATE TABLE IF NOT EXISTS journal_entries (
	id UUID PRIMARY KEY,
	seq BIGINT NOT NULL,
	ts TIMESTAMPTZ NOT NULL,
	terminal_id TEXT NOT NULL,
	event TEXT NOT NULL,
	card_id TEXT,
	amount BIGINT,
	detail TEXT
)`

// JournalStore implements ports.JournalStore on PostgreSQL.
type JournalStore struct {
	pool Pool
}

// NewJournalStore creates a new JournalStore.
func NewJournalStore(pool Pool) *JournalStore {
	return &JournalStore{pool: pool}
}

// Migrate creates the journal table if it does not exist.
func (s *JournalStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, journalSchema); err != nil {
		return fmt.Errorf("create journal table: %w", err)
	}
	return nil
}

// Append inserts one journal entry.
func (s *JournalStore) Append(ctx context.Context, e domain.Entry) error {
	query := `INSERT INTO journal_entries (id, seq, ts, terminal_id, event, card_id, amount, detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, query,
		e.ID, e.Seq, e.Timestamp, e.TerminalID,
		string(e.Event), nullIfEmpty(e.CardID), e.Amount, nullIfEmpty(e.Detail),
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *JournalStore) Recent(ctx context.Context, limit int) ([]domain.Entry, error) {
	query := `SELECT id, seq, ts, terminal_id, event, card_id, amount, detail
		FROM journal_entries ORDER BY seq DESC LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var (
			e      domain.Entry
			event  string
			cardID *string
			detail *string
		)
		if err := rows.Scan(&e.ID, &e.Seq, &e.Timestamp, &e.TerminalID, &event, &cardID, &e.Amount, &detail); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Event = domain.EventKind(event)
		if cardID != nil {
			e.CardID = *cardID
		}
		if detail != nil {
			e.Detail = *detail
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	return entries, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
