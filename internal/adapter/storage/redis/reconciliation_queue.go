package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"atm-transaction-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReconciliationQueue implements ports.ReconciliationQueue as a Redis list.
// The back-office reconciliation system drains it; the terminal only pushes.
type ReconciliationQueue struct {
	client *goredis.Client
	key    string
}

// NewReconciliationQueue creates a Redis-backed reconciliation queue.
func NewReconciliationQueue(client *goredis.Client, terminalID string) *ReconciliationQueue {
	return &ReconciliationQueue{
		client: client,
		key:    "reconciliation:" + terminalID,
	}
}

// Enqueue pushes one case to the tail of the queue.
func (q *ReconciliationQueue) Enqueue(ctx context.Context, c domain.ReconciliationCase) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal reconciliation case: %w", err)
	}
	if err := q.client.RPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("push reconciliation case: %w", err)
	}
	return nil
}

// Pending returns up to limit open cases, oldest first, without removing them.
func (q *ReconciliationQueue) Pending(ctx context.Context, limit int) ([]domain.ReconciliationCase, error) {
	raw, err := q.client.LRange(ctx, q.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read reconciliation queue: %w", err)
	}

	cases := make([]domain.ReconciliationCase, 0, len(raw))
	for _, item := range raw {
		var c domain.ReconciliationCase
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, fmt.Errorf("unmarshal reconciliation case: %w", err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}
