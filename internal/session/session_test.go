package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/internal/core/ports/mocks"
	"atm-transaction-core/internal/journal"
	"atm-transaction-core/internal/metrics"
	"atm-transaction-core/pkg/apperror"
	"atm-transaction-core/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// captureStore collects journal entries in memory so tests can assert on the
// exact sequence that was persisted.
type captureStore struct {
	mu      sync.Mutex
	entries []domain.Entry
}

func (c *captureStore) Append(_ context.Context, e domain.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
	return nil
}

func (c *captureStore) Recent(_ context.Context, limit int) ([]domain.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit > len(c.entries) {
		limit = len(c.entries)
	}
	out := make([]domain.Entry, limit)
	copy(out, c.entries[len(c.entries)-limit:])
	return out, nil
}

func (c *captureStore) events() []domain.EventKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]domain.EventKind, 0, len(c.entries))
	for _, e := range c.entries {
		kinds = append(kinds, e.Event)
	}
	return kinds
}

type testEnv struct {
	bank    *mocks.MockBankClient
	periph  *mocks.MockPeripheralController
	recon   *mocks.MockReconciliationQueue
	store   *captureStore
	logBuf  *bytes.Buffer
	session *Session
}

func testCard() domain.Card {
	return domain.Card{
		CardID:         "4000123456789010",
		LinkedAccounts: []domain.AccountRef{"CHK-001", "SAV-002"},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		bank:   mocks.NewMockBankClient(ctrl),
		periph: mocks.NewMockPeripheralController(ctrl),
		recon:  mocks.NewMockReconciliationQueue(ctrl),
		store:  &captureStore{},
		logBuf: &bytes.Buffer{},
	}
	log := logger.NewWithWriter("debug", env.logBuf)

	env.session = New(testCard(), Deps{
		Bank:        env.bank,
		Peripherals: env.periph,
		Journal:     journal.New("ATM-TEST", env.store, log),
		Recon:       env.recon,
		Metrics:     metrics.New(prometheus.NewRegistry()),
		Log:         log,
		Config: Config{
			TerminalID:      "ATM-TEST",
			Location:        "Main Street Branch",
			CashUnit:        20,
			EnvelopeTimeout: time.Minute,
		},
	})
	return env
}

// authenticate drives the session past PIN verification.
func (env *testEnv) authenticate(t *testing.T) {
	t.Helper()
	env.bank.EXPECT().VerifyPIN(gomock.Any(), testCard().CardID, "4321").Return(true, nil)
	outcome, err := env.session.SubmitPIN(context.Background(), "4321")
	require.NoError(t, err)
	require.True(t, outcome.Accepted)
}

func approvedDecision(ending int64) *domain.BankDecision {
	return &domain.BankDecision{Approved: true, EndingBalance: &ending}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestSubmitPIN_Accepted(t *testing.T) {
	env := newTestEnv(t)
	env.authenticate(t)
	assert.Equal(t, domain.StateTransactionSelecting, env.session.State())
}

func TestSubmitPIN_ThirdFailureRetainsCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(3)

	outcome, err := env.session.SubmitPIN(ctx, "0000")
	require.NoError(t, err)
	assert.False(t, outcome.Accepted)
	assert.Equal(t, 2, outcome.AttemptsLeft)

	outcome, err = env.session.SubmitPIN(ctx, "1111")
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.AttemptsLeft)

	outcome, err = env.session.SubmitPIN(ctx, "2222")
	require.NoError(t, err)
	assert.True(t, outcome.CardRetained)
	assert.Equal(t, domain.StateTerminatedRetained, env.session.State())
	assert.True(t, env.session.CardRetained())

	// The session is over: every further operation reports it ended.
	_, err = env.session.SubmitPIN(ctx, "3333")
	assert.Equal(t, "SES_004", appCode(t, err))
	_, err = env.session.SelectTransaction(ctx, domain.NewBalanceInquiry("CHK-001"))
	assert.Equal(t, "SES_004", appCode(t, err))
	assert.Equal(t, "SES_004", appCode(t, env.session.Cancel(ctx)))
	assert.Equal(t, "SES_004", appCode(t, env.session.EndSession(ctx, false)))

	events := env.store.events()
	assert.Contains(t, events, domain.EventCardRetained)
	assert.NotContains(t, events, domain.EventCardReturned)
}

func TestSubmitPIN_UnreachableNotCounted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gomock.InOrder(
		env.bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, fmt.Errorf("dial: %w", ports.ErrBankUnreachable)),
		env.bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2),
		env.bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
	)

	_, err := env.session.SubmitPIN(ctx, "4321")
	assert.Equal(t, "BANK_002", appCode(t, err))

	// Two genuine mismatches follow; without the unreachable attempt counting,
	// the card survives and the third submission can still succeed.
	outcome, err := env.session.SubmitPIN(ctx, "0000")
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.AttemptsLeft)
	outcome, err = env.session.SubmitPIN(ctx, "1111")
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.AttemptsLeft)

	outcome, err = env.session.SubmitPIN(ctx, "4321")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
}

func TestSelectTransaction_ValidationNeverReachesBank(t *testing.T) {
	cases := []struct {
		name string
		txn  domain.Transaction
	}{
		{"zero withdrawal", domain.NewWithdrawal("CHK-001", 0)},
		{"negative withdrawal", domain.NewWithdrawal("CHK-001", -40)},
		{"not a cash multiple", domain.NewWithdrawal("CHK-001", 35)},
		{"zero deposit", domain.NewDeposit("CHK-001", 0)},
		{"transfer to itself", domain.NewTransfer("CHK-001", "CHK-001", 50)},
		{"unlinked account", domain.NewWithdrawal("CHK-999", 40)},
		{"unlinked transfer target", domain.NewTransfer("CHK-001", "SAV-999", 50)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authenticate(t)
			env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Times(0)

			_, err := env.session.SelectTransaction(context.Background(), tc.txn)
			assert.Equal(t, "VAL_002", appCode(t, err))
			assert.Equal(t, domain.StateTransactionSelecting, env.session.State())
		})
	}
}

func TestSelectTransaction_WithdrawalApproved(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.AuthorizationRequest) (*domain.BankDecision, error) {
			assert.Equal(t, testCard().CardID, req.CardID)
			assert.Equal(t, domain.TransactionTypeWithdrawal, req.Type)
			assert.Equal(t, domain.AccountRef("CHK-001"), req.Account)
			assert.Equal(t, int64(40), req.Amount)
			return approvedDecision(160), nil
		})
	gomock.InOrder(
		env.periph.EXPECT().Dispense(gomock.Any(), int64(40)).Return(nil),
		env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil),
	)

	outcome, err := env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 40))
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	require.NotNil(t, outcome.Receipt)
	assert.Equal(t, int64(40), outcome.Receipt.Amount)
	require.NotNil(t, outcome.Receipt.EndingBalance)
	assert.Equal(t, int64(160), *outcome.Receipt.EndingBalance)
	assert.Equal(t, "ATM-TEST", outcome.Receipt.TerminalID)
	assert.Equal(t, domain.StateCompleting, env.session.State())

	// Cash leaves the machine only after the approval is journaled.
	events := env.store.events()
	dispenseAt, responseAt := -1, -1
	for i, ev := range events {
		switch ev {
		case domain.EventDispense:
			dispenseAt = i
		case domain.EventBankResponse:
			if responseAt == -1 {
				responseAt = i
			}
		}
	}
	require.NotEqual(t, -1, dispenseAt)
	assert.Greater(t, dispenseAt, responseAt)
}

func TestSelectTransaction_DeclinedIsRecoverable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		Return(&domain.BankDecision{Approved: false, ReasonCode: "INSUFFICIENT_FUNDS"}, nil)
	env.periph.EXPECT().Dispense(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 100))
	require.NoError(t, err)
	assert.False(t, outcome.Approved)
	assert.Equal(t, "INSUFFICIENT_FUNDS", outcome.ReasonCode)
	assert.Equal(t, domain.StateDeclined, env.session.State())

	// The customer may immediately try a smaller amount.
	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(10), nil)
	gomock.InOrder(
		env.periph.EXPECT().Dispense(gomock.Any(), int64(20)).Return(nil),
		env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil),
	)
	outcome, err = env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 20))
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
}

func TestSelectTransaction_BankUnreachableTreatedAsDecline(t *testing.T) {
	env := newTestEnv(t)
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("post: %w", ports.ErrBankUnreachable))
	env.periph.EXPECT().Dispense(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := env.session.SelectTransaction(context.Background(), domain.NewWithdrawal("CHK-001", 40))
	require.NoError(t, err)
	assert.False(t, outcome.Approved)
	assert.Equal(t, domain.ReasonBankUnreachable, outcome.ReasonCode)
	assert.Equal(t, domain.StateDeclined, env.session.State())
}

func TestWithdrawal_DispenseFaultTerminatesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(160), nil)
	env.periph.EXPECT().Dispense(gomock.Any(), int64(40)).
		Return(fmt.Errorf("cassette jam: %w", ports.ErrPeripheralFault))
	env.recon.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.ReconciliationCase) error {
			assert.Equal(t, domain.ReasonDispenseFault, c.Reason)
			assert.Equal(t, int64(40), c.Amount)
			return nil
		})

	_, err := env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 40))
	assert.Equal(t, "HW_001", appCode(t, err))
	assert.Equal(t, domain.StateTerminatedReturned, env.session.State())

	events := env.store.events()
	assert.Contains(t, events, domain.EventPeripheralFault)
	assert.Contains(t, events, domain.EventCardReturned)
}

func TestWithdrawal_PrintFaultIsRecoverable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(160), nil)
	env.periph.EXPECT().Dispense(gomock.Any(), int64(40)).Return(nil)
	env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("out of paper: %w", ports.ErrPeripheralFault))

	_, err := env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 40))
	assert.Equal(t, "HW_002", appCode(t, err))
	// The cash is out and the bank effect stands; the session continues.
	assert.Equal(t, domain.StateTransactionSelecting, env.session.State())
	assert.Contains(t, env.store.events(), domain.EventDispense)
}

func TestDeposit_TwoPhase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(0), nil)
	env.periph.EXPECT().AcceptEnvelope(gomock.Any(), time.Minute).Return(nil)

	outcome, err := env.session.SelectTransaction(ctx, domain.NewDeposit("SAV-002", 100))
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	assert.True(t, outcome.AwaitingEnvelope)
	assert.Nil(t, outcome.Receipt)
	assert.Equal(t, domain.StateAwaitingEnvelope, env.session.State())

	env.bank.EXPECT().ConfirmDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.DepositConfirmation) (*domain.BankDecision, error) {
			assert.Equal(t, domain.AccountRef("SAV-002"), req.Account)
			assert.Equal(t, int64(100), req.Amount)
			return approvedDecision(300), nil
		})
	env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err = env.session.OnEnvelopeReceived(ctx, 100)
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	require.NotNil(t, outcome.Receipt)
	assert.Equal(t, int64(100), outcome.Receipt.Amount)
	assert.Equal(t, domain.StateCompleting, env.session.State())

	events := env.store.events()
	assert.Contains(t, events, domain.EventEnvelopeAccepted)
}

func TestDeposit_TimeoutSendsNoConfirmation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(0), nil)
	env.periph.EXPECT().AcceptEnvelope(gomock.Any(), gomock.Any()).Return(nil)
	env.bank.EXPECT().ConfirmDeposit(gomock.Any(), gomock.Any()).Times(0)

	_, err := env.session.SelectTransaction(ctx, domain.NewDeposit("SAV-002", 100))
	require.NoError(t, err)

	env.session.OnEnvelopeTimeout(ctx)
	assert.Equal(t, domain.StateTransactionSelecting, env.session.State())
	assert.Contains(t, env.store.events(), domain.EventEnvelopeAbandoned)

	// A late envelope event after the timeout is rejected, not credited.
	_, err = env.session.OnEnvelopeReceived(ctx, 100)
	assert.Equal(t, "SES_005", appCode(t, err))
}

func TestDeposit_ConfirmUnreachableEscalates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(0), nil)
	env.periph.EXPECT().AcceptEnvelope(gomock.Any(), gomock.Any()).Return(nil)
	env.bank.EXPECT().ConfirmDeposit(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("post: %w", ports.ErrBankUnreachable))
	env.recon.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.ReconciliationCase) error {
			assert.Equal(t, domain.ReasonDepositUnconfirmed, c.Reason)
			assert.Equal(t, int64(100), c.Amount)
			return nil
		})

	_, err := env.session.SelectTransaction(ctx, domain.NewDeposit("SAV-002", 100))
	require.NoError(t, err)

	_, err = env.session.OnEnvelopeReceived(ctx, 100)
	assert.Equal(t, "BANK_003", appCode(t, err))
	assert.Equal(t, domain.StateDeclined, env.session.State())
}

func TestDeposit_EnvelopeSlotFault(t *testing.T) {
	env := newTestEnv(t)
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(0), nil)
	env.periph.EXPECT().AcceptEnvelope(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("slot blocked: %w", ports.ErrPeripheralFault))

	_, err := env.session.SelectTransaction(context.Background(), domain.NewDeposit("SAV-002", 100))
	assert.Equal(t, "HW_003", appCode(t, err))
	assert.Equal(t, domain.StateDeclined, env.session.State())
}

func TestBalanceInquiry(t *testing.T) {
	env := newTestEnv(t)
	env.authenticate(t)

	available := int64(250)
	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		Return(&domain.BankDecision{Approved: true, AvailableBalance: &available}, nil)
	env.periph.EXPECT().Dispense(gomock.Any(), gomock.Any()).Times(0)
	env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := env.session.SelectTransaction(context.Background(), domain.NewBalanceInquiry("CHK-001"))
	require.NoError(t, err)
	require.NotNil(t, outcome.Receipt)
	require.NotNil(t, outcome.Receipt.AvailableBalance)
	assert.Equal(t, int64(250), *outcome.Receipt.AvailableBalance)
}

func TestCancel_RejectedWhileAuthorizationInFlight(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ ports.AuthorizationRequest) (*domain.BankDecision, error) {
			// The request is on the wire: a cancel keypress must bounce.
			err := env.session.Cancel(ctx)
			assert.Equal(t, "SES_003", appCode(t, err))
			return approvedDecision(160), nil
		})
	gomock.InOrder(
		env.periph.EXPECT().Dispense(gomock.Any(), int64(40)).Return(nil),
		env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil),
	)

	outcome, err := env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 40))
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
}

func TestCancel_DuringEnvelopeWaitAbandonsDeposit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(0), nil)
	env.periph.EXPECT().AcceptEnvelope(gomock.Any(), gomock.Any()).Return(nil)
	env.bank.EXPECT().ConfirmDeposit(gomock.Any(), gomock.Any()).Times(0)

	_, err := env.session.SelectTransaction(ctx, domain.NewDeposit("SAV-002", 100))
	require.NoError(t, err)

	require.NoError(t, env.session.Cancel(ctx))
	// The card stays in; only the deposit is abandoned.
	assert.Equal(t, domain.StateTransactionSelecting, env.session.State())
	assert.Contains(t, env.store.events(), domain.EventEnvelopeAbandoned)
	assert.NotContains(t, env.store.events(), domain.EventCardReturned)
}

func TestCancel_AtSelectionReturnsCard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	require.NoError(t, env.session.Cancel(ctx))
	assert.Equal(t, domain.StateTerminatedReturned, env.session.State())
	assert.Contains(t, env.store.events(), domain.EventSessionCancelled)
	assert.Contains(t, env.store.events(), domain.EventCardReturned)
}

func TestEndSession_AnotherTransactionLoops(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.authenticate(t)

	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(160), nil)
	gomock.InOrder(
		env.periph.EXPECT().Dispense(gomock.Any(), int64(40)).Return(nil),
		env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil),
	)
	_, err := env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 40))
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleting, env.session.State())

	require.NoError(t, env.session.EndSession(ctx, true))
	assert.Equal(t, domain.StateTransactionSelecting, env.session.State())

	require.NoError(t, env.session.EndSession(ctx, false))
	assert.Equal(t, domain.StateTerminatedReturned, env.session.State())
	assert.Contains(t, env.store.events(), domain.EventCardReturned)
}

func TestJournalAndLogsNeverContainPIN(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	const goodPIN = "9876"
	const badPIN = "111222"

	gomock.InOrder(
		env.bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), badPIN).Return(false, nil),
		env.bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), goodPIN).Return(true, nil),
	)
	env.bank.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(approvedDecision(160), nil)
	gomock.InOrder(
		env.periph.EXPECT().Dispense(gomock.Any(), int64(40)).Return(nil),
		env.periph.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := env.session.SubmitPIN(ctx, badPIN)
	require.NoError(t, err)
	_, err = env.session.SubmitPIN(ctx, goodPIN)
	require.NoError(t, err)
	_, err = env.session.SelectTransaction(ctx, domain.NewWithdrawal("CHK-001", 40))
	require.NoError(t, err)
	require.NoError(t, env.session.EndSession(ctx, false))

	for _, e := range env.store.entries {
		for _, field := range []string{e.CardID, e.Detail, string(e.Event), e.TerminalID} {
			assert.NotContains(t, field, goodPIN)
			assert.NotContains(t, field, badPIN)
		}
	}
	logged := env.logBuf.String()
	assert.False(t, strings.Contains(logged, goodPIN), "log output leaked the PIN")
	assert.False(t, strings.Contains(logged, badPIN), "log output leaked the failed PIN")
}

func TestJournalAppendFailureDoesNotBlockService(t *testing.T) {
	ctrl := gomock.NewController(t)
	bank := mocks.NewMockBankClient(ctrl)
	periph := mocks.NewMockPeripheralController(ctrl)
	store := mocks.NewMockJournalStore(ctrl)
	store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()

	log := logger.NewWithWriter("error", &bytes.Buffer{})
	s := New(testCard(), Deps{
		Bank:        bank,
		Peripherals: periph,
		Journal:     journal.New("ATM-TEST", store, log),
		Metrics:     metrics.New(prometheus.NewRegistry()),
		Log:         log,
		Config:      Config{TerminalID: "ATM-TEST", CashUnit: 20, EnvelopeTimeout: time.Minute},
	})

	bank.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	outcome, err := s.SubmitPIN(context.Background(), "4321")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
}
