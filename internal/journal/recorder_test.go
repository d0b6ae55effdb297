package journal

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports/mocks"
	"atm-transaction-core/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memStore struct {
	mu      sync.Mutex
	entries []domain.Entry
}

func (m *memStore) Append(_ context.Context, e domain.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memStore) Recent(_ context.Context, limit int) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return append([]domain.Entry(nil), m.entries[len(m.entries)-limit:]...), nil
}

func TestRecorder_AssignsMonotonicSequence(t *testing.T) {
	store := &memStore{}
	r := New("ATM-TEST", store, logger.NewWithWriter("info", &bytes.Buffer{}))
	ctx := context.Background()

	r.Startup(ctx)
	r.CardInserted(ctx, "CARD-1")
	r.BankRequest(ctx, "verify_pin", "CARD-1", nil)
	r.BankResponse(ctx, "verify_pin", "CARD-1", "match")
	r.CardReturned(ctx, "CARD-1")

	require.Len(t, store.entries, 5)
	for i, e := range store.entries {
		assert.Equal(t, uint64(i+1), e.Seq)
		assert.Equal(t, "ATM-TEST", e.TerminalID)
		assert.NotEqual(t, "", e.ID.String())
		assert.False(t, e.Timestamp.IsZero())
	}

	// A response never precedes its request.
	assert.Equal(t, domain.EventBankRequest, store.entries[2].Event)
	assert.Equal(t, domain.EventBankResponse, store.entries[3].Event)
}

func TestRecorder_ConcurrentRecordsKeepDistinctSequences(t *testing.T) {
	store := &memStore{}
	r := New("ATM-TEST", store, logger.NewWithWriter("info", &bytes.Buffer{}))
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.CardInserted(ctx, "CARD-1")
		}()
	}
	wg.Wait()

	require.Len(t, store.entries, n)
	seen := make(map[uint64]bool)
	for _, e := range store.entries {
		assert.False(t, seen[e.Seq], "duplicate seq %d", e.Seq)
		seen[e.Seq] = true
	}
}

func TestRecorder_StoreFailureIsLoggedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockJournalStore(ctrl)
	store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(2)

	buf := &bytes.Buffer{}
	r := New("ATM-TEST", store, logger.NewWithWriter("info", buf))
	ctx := context.Background()

	r.CardInserted(ctx, "CARD-1")
	r.CardReturned(ctx, "CARD-1")

	assert.Contains(t, buf.String(), "journal append failed")
}

func TestRecorder_NilStoreLogsOnly(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New("ATM-TEST", nil, logger.NewWithWriter("info", buf))

	r.Dispense(context.Background(), "CARD-1", 40)

	assert.Contains(t, buf.String(), string(domain.EventDispense))
	assert.Contains(t, buf.String(), "40")
}

func TestRecorder_EntryFieldsRoundTrip(t *testing.T) {
	store := &memStore{}
	r := New("ATM-TEST", store, logger.NewWithWriter("info", &bytes.Buffer{}))
	ctx := context.Background()

	amount := int64(100)
	r.BankRequest(ctx, "confirm_deposit", "CARD-1", &amount)
	r.PinAttempt(ctx, "CARD-1", "rejected")
	r.PeripheralFault(ctx, "CARD-1", "dispenser", &amount)

	require.Len(t, store.entries, 3)
	assert.Equal(t, "confirm_deposit", store.entries[0].Detail)
	require.NotNil(t, store.entries[0].Amount)
	assert.Equal(t, int64(100), *store.entries[0].Amount)
	assert.Equal(t, "rejected", store.entries[1].Detail)
	assert.Equal(t, "dispenser", store.entries[2].Detail)
}
