// Package terminal binds the session state machine to the outside world and
// owns the one-customer-at-a-time invariant.
package terminal

import (
	"context"
	"sync"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/internal/journal"
	"atm-transaction-core/internal/metrics"
	"atm-transaction-core/internal/session"
	"atm-transaction-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// Deps are the collaborators a terminal wires into each session.
type Deps struct {
	Bank        ports.BankClient
	Peripherals ports.PeripheralController
	Journal     *journal.Recorder
	Recon       ports.ReconciliationQueue
	Metrics     *metrics.Metrics
	Log         zerolog.Logger
	Config      session.Config
}

// Terminal serves exactly one customer at a time. A card inserted while a
// session is live is rejected immediately, never queued.
type Terminal struct {
	mu      sync.Mutex
	deps    Deps
	current *session.Session
	log     zerolog.Logger
}

// New creates a Terminal.
func New(deps Deps) *Terminal {
	return &Terminal{deps: deps, log: deps.Log}
}

// Startup journals terminal start.
func (t *Terminal) Startup(ctx context.Context) {
	t.deps.Journal.Startup(ctx)
	t.log.Info().Str("location", t.deps.Config.Location).Msg("terminal in service")
}

// Shutdown journals terminal stop.
func (t *Terminal) Shutdown(ctx context.Context) {
	t.deps.Journal.Shutdown(ctx)
	t.log.Info().Msg("terminal out of service")
}

// InsertCard starts a new customer session. Fails fast with SES_001 if a
// live session exists.
func (t *Terminal) InsertCard(ctx context.Context, card domain.Card) (*session.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil && !t.current.State().Terminal() {
		return nil, apperror.ErrSessionActive()
	}

	s := session.New(card, session.Deps{
		Bank:        t.deps.Bank,
		Peripherals: t.deps.Peripherals,
		Journal:     t.deps.Journal,
		Recon:       t.deps.Recon,
		Metrics:     t.deps.Metrics,
		Log:         t.deps.Log,
		Config:      t.deps.Config,
	})
	t.current = s

	t.deps.Journal.CardInserted(ctx, card.CardID)
	t.deps.Metrics.SessionsStarted.Inc()
	t.log.Info().Str("session_id", s.ID().String()).Str("card_id", card.CardID).Msg("session started")
	return s, nil
}

// Session returns the live session, or SES_002 when the terminal is idle.
// A terminated session still held is reported as ended until the next card.
func (t *Terminal) Session() (*session.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil, apperror.ErrNoActiveSession()
	}
	if t.current.State().Terminal() {
		return nil, apperror.ErrSessionEnded()
	}
	return t.current, nil
}

// SubmitPIN forwards a PIN attempt to the live session.
func (t *Terminal) SubmitPIN(ctx context.Context, pin string) (*session.PinOutcome, error) {
	s, err := t.Session()
	if err != nil {
		return nil, err
	}
	return s.SubmitPIN(ctx, pin)
}

// SelectTransaction forwards a transaction request to the live session.
func (t *Terminal) SelectTransaction(ctx context.Context, txn domain.Transaction) (*session.Outcome, error) {
	s, err := t.Session()
	if err != nil {
		return nil, err
	}
	return s.SelectTransaction(ctx, txn)
}

// EnvelopeReceived forwards a physical envelope event to the live session.
func (t *Terminal) EnvelopeReceived(ctx context.Context, declaredAmount int64) (*session.Outcome, error) {
	s, err := t.Session()
	if err != nil {
		return nil, err
	}
	return s.OnEnvelopeReceived(ctx, declaredAmount)
}

// Cancel forwards a cancel keypress to the live session.
func (t *Terminal) Cancel(ctx context.Context) error {
	s, err := t.Session()
	if err != nil {
		return err
	}
	return s.Cancel(ctx)
}

// EndSession forwards the customer's another-transaction answer.
func (t *Terminal) EndSession(ctx context.Context, wantsAnother bool) error {
	s, err := t.Session()
	if err != nil {
		return err
	}
	return s.EndSession(ctx, wantsAnother)
}
