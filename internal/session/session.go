// Package session implements the per-customer state machine: PIN verification
// with retry counting, transaction dispatch, bank authorization, peripheral
// actuation, receipt emission, cancellation and termination. Transitions are
// explicit functions from (state, event); invalid combinations are
// unrepresentable rather than guarded by flags.
package session

import (
	"context"
	"sync"
	"time"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/internal/journal"
	"atm-transaction-core/internal/metrics"
	"atm-transaction-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Bank message kinds as journaled.
const (
	msgVerifyPIN      = "verify_pin"
	msgAuthorize      = "authorize"
	msgConfirmDeposit = "confirm_deposit"
)

// Config holds the terminal policies a session needs.
type Config struct {
	TerminalID      string
	Location        string
	CashUnit        int64
	EnvelopeTimeout time.Duration
}

// Deps are the collaborators injected into every session.
type Deps struct {
	Bank        ports.BankClient
	Peripherals ports.PeripheralController
	Journal     *journal.Recorder
	Recon       ports.ReconciliationQueue
	Metrics     *metrics.Metrics
	Log         zerolog.Logger
	Config      Config
}

// PinOutcome is the result of one SubmitPIN call.
type PinOutcome struct {
	Accepted     bool `json:"accepted"`
	AttemptsLeft int  `json:"attempts_left"`
	CardRetained bool `json:"card_retained"`
}

// Outcome is the result of a transaction request that reached the bank.
type Outcome struct {
	Approved         bool            `json:"approved"`
	ReasonCode       string          `json:"reason_code,omitempty"`
	AwaitingEnvelope bool            `json:"awaiting_envelope,omitempty"`
	Receipt          *domain.Receipt `json:"receipt,omitempty"`
}

// Session owns one customer interaction end-to-end. All customer-facing
// operations run to completion before the next is accepted; Cancel is the
// out-of-band exception and is evaluated against the current state. The
// envelope wait is the only true suspension: the session arms a timer and
// whichever of envelope receipt or timeout fires first wins.
type Session struct {
	mu            sync.Mutex
	id            uuid.UUID
	card          domain.Card
	state         domain.SessionState
	pinAttempts   int
	pending       *domain.Transaction
	envelopeTimer *time.Timer

	bank        ports.BankClient
	peripherals ports.PeripheralController
	journal     *journal.Recorder
	recon       ports.ReconciliationQueue
	metrics     *metrics.Metrics
	log         zerolog.Logger
	cfg         Config
}

// New creates a session for an inserted card. The card is owned by the
// session until termination.
func New(card domain.Card, deps Deps) *Session {
	s := &Session{
		id:          uuid.New(),
		card:        card,
		state:       domain.StateCardInserted,
		bank:        deps.Bank,
		peripherals: deps.Peripherals,
		journal:     deps.Journal,
		recon:       deps.Recon,
		metrics:     deps.Metrics,
		cfg:         deps.Config,
	}
	s.log = deps.Log.With().Str("session_id", s.id.String()).Str("card_id", card.CardID).Logger()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Card returns the card this session owns.
func (s *Session) Card() domain.Card { return s.card }

// State returns the current lifecycle state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CardRetained reports whether the session ended with the card kept.
func (s *Session) CardRetained() bool {
	return s.State() == domain.StateTerminatedRetained
}

// SubmitPIN verifies one PIN attempt against the bank. The value is sent to
// the bank and never journaled; only the outcome is. The third consecutive
// mismatch retains the card and terminates the session.
func (s *Session) SubmitPIN(ctx context.Context, pin string) (*PinOutcome, error) {
	s.mu.Lock()
	switch s.state {
	case domain.StateCardInserted, domain.StatePinPending:
		s.state = domain.StatePinPending
	default:
		defer s.mu.Unlock()
		if s.state.Terminal() {
			return nil, apperror.ErrSessionEnded()
		}
		return nil, apperror.ErrInvalidState("PIN already verified")
	}
	cardID := s.card.CardID
	s.mu.Unlock()

	s.journal.BankRequest(ctx, msgVerifyPIN, cardID, nil)
	match, err := s.bank.VerifyPIN(ctx, cardID, pin)
	if err != nil {
		s.journal.BankResponse(ctx, msgVerifyPIN, cardID, "unreachable")
		// Not counted as a mismatch: the bank gave no verdict.
		return nil, apperror.ErrBankUnreachable(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StatePinPending {
		// Cancelled while the verification was in flight.
		return nil, apperror.ErrSessionEnded()
	}

	if match {
		s.journal.BankResponse(ctx, msgVerifyPIN, cardID, "match")
		s.journal.PinAttempt(ctx, cardID, "accepted")
		s.pinAttempts = 0
		s.state = domain.StateTransactionSelecting
		return &PinOutcome{Accepted: true}, nil
	}

	s.journal.BankResponse(ctx, msgVerifyPIN, cardID, "mismatch")
	s.pinAttempts++
	s.metrics.PinFailures.Inc()

	if s.pinAttempts >= domain.MaxPinAttempts {
		s.journal.PinAttempt(ctx, cardID, "retained")
		s.journal.CardRetained(ctx, cardID)
		s.state = domain.StateTerminatedRetained
		s.metrics.CardsRetained.Inc()
		s.metrics.SessionsTerminated.WithLabelValues("retained").Inc()
		s.log.Warn().Int("attempts", s.pinAttempts).Msg("card retained after repeated PIN failure")
		return &PinOutcome{CardRetained: true}, nil
	}

	s.journal.PinAttempt(ctx, cardID, "rejected")
	return &PinOutcome{AttemptsLeft: domain.MaxPinAttempts - s.pinAttempts}, nil
}

// SelectTransaction validates the request structurally, then submits it to
// the bank for authorization and, on approval, actuates the peripherals and
// builds the receipt. Validation failures never reach the bank. A decline
// (including an unreachable bank) is recoverable: the session offers another
// transaction without ejecting the card.
func (s *Session) SelectTransaction(ctx context.Context, txn domain.Transaction) (*Outcome, error) {
	s.mu.Lock()
	switch s.state {
	case domain.StateTransactionSelecting, domain.StateDeclined:
	default:
		defer s.mu.Unlock()
		if s.state.Terminal() {
			return nil, apperror.ErrSessionEnded()
		}
		return nil, apperror.ErrInvalidState("no transaction may be selected in state " + string(s.state))
	}

	if err := txn.Validate(s.card, s.cfg.CashUnit); err != nil {
		s.mu.Unlock()
		return nil, apperror.ErrInvalidAmount(err.Error())
	}

	s.pending = &txn
	s.state = domain.StateAwaitingAuthorization
	cardID := s.card.CardID
	s.mu.Unlock()

	var amount *int64
	if txn.Type != domain.TransactionTypeBalanceInquiry {
		amount = &txn.Amount
	}
	s.journal.BankRequest(ctx, msgAuthorize, cardID, amount)

	decision, err := s.bank.Authorize(ctx, ports.AuthorizationRequest{
		CardID:    cardID,
		Type:      txn.Type,
		Account:   txn.Account,
		ToAccount: txn.ToAccount,
		Amount:    txn.Amount,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// Unreachable is handled identically to a decline: no retry, the
		// authorization decision must not be replayed silently.
		s.journal.BankResponse(ctx, msgAuthorize, cardID, "unreachable")
		s.pending = nil
		s.state = domain.StateDeclined
		s.metrics.Transactions.WithLabelValues(string(txn.Type), "declined").Inc()
		s.log.Warn().Err(err).Str("type", string(txn.Type)).Msg("authorization unreachable, treated as decline")
		return &Outcome{ReasonCode: domain.ReasonBankUnreachable}, nil
	}

	if !decision.Approved {
		reason := decision.ReasonCode
		if reason == "" {
			reason = domain.ReasonDeclined
		}
		s.journal.BankResponse(ctx, msgAuthorize, cardID, "declined:"+reason)
		s.pending = nil
		s.state = domain.StateDeclined
		s.metrics.Transactions.WithLabelValues(string(txn.Type), "declined").Inc()
		return &Outcome{ReasonCode: reason}, nil
	}

	s.journal.BankResponse(ctx, msgAuthorize, cardID, "approved")

	if txn.Type == domain.TransactionTypeDeposit {
		return s.beginEnvelopeWaitLocked(ctx)
	}
	return s.completeApprovedLocked(ctx, txn, *decision)
}

// beginEnvelopeWaitLocked unlocks the deposit slot and arms the acceptance
// timer. Caller holds s.mu.
func (s *Session) beginEnvelopeWaitLocked(ctx context.Context) (*Outcome, error) {
	cardID := s.card.CardID
	if err := s.peripherals.AcceptEnvelope(ctx, s.cfg.EnvelopeTimeout); err != nil {
		s.journal.PeripheralFault(ctx, cardID, "envelope_slot", nil)
		s.metrics.PeripheralFaults.WithLabelValues("envelope_slot").Inc()
		s.pending = nil
		s.state = domain.StateDeclined
		return nil, apperror.ErrEnvelopeSlotFault(err)
	}

	s.state = domain.StateAwaitingEnvelope
	s.envelopeTimer = time.AfterFunc(s.cfg.EnvelopeTimeout, func() {
		s.OnEnvelopeTimeout(context.Background())
	})
	return &Outcome{Approved: true, AwaitingEnvelope: true}, nil
}

// completeApprovedLocked executes the physical action for an approved
// non-deposit transaction and emits the receipt. Caller holds s.mu.
func (s *Session) completeApprovedLocked(ctx context.Context, txn domain.Transaction, decision domain.BankDecision) (*Outcome, error) {
	cardID := s.card.CardID

	if txn.Type == domain.TransactionTypeWithdrawal {
		if err := s.peripherals.Dispense(ctx, txn.Amount); err != nil {
			// The bank has debited but the cash may not have come out.
			// Journal, escalate and end the session: this is the one fault
			// that terminates without the customer's consent.
			s.journal.PeripheralFault(ctx, cardID, "dispenser", &txn.Amount)
			s.metrics.PeripheralFaults.WithLabelValues("dispenser").Inc()
			s.escalate(ctx, domain.ReconciliationCase{
				ID:         uuid.New(),
				TerminalID: s.cfg.TerminalID,
				CardID:     cardID,
				Account:    txn.Account,
				Amount:     txn.Amount,
				Reason:     domain.ReasonDispenseFault,
				CreatedAt:  time.Now().UTC(),
			})
			s.metrics.Transactions.WithLabelValues(string(txn.Type), "failed").Inc()
			s.terminateLocked(ctx, domain.StateTerminatedReturned)
			return nil, apperror.ErrDispenseFault(err)
		}
		s.journal.Dispense(ctx, cardID, txn.Amount)
	}

	receipt := domain.BuildReceipt(s.cfg.TerminalID, s.cfg.Location, txn, decision, time.Now().UTC())
	if err := s.peripherals.Print(ctx, receipt); err != nil {
		// The bank effect stands; only the paper record is lost.
		s.journal.PeripheralFault(ctx, cardID, "printer", nil)
		s.metrics.PeripheralFaults.WithLabelValues("printer").Inc()
		s.metrics.Transactions.WithLabelValues(string(txn.Type), "completed").Inc()
		s.pending = nil
		s.state = domain.StateTransactionSelecting
		return nil, apperror.ErrPrintFault(err)
	}

	s.journal.ReceiptPrinted(ctx, cardID, receipt.Amount)
	s.metrics.Transactions.WithLabelValues(string(txn.Type), "completed").Inc()
	s.pending = nil
	s.state = domain.StateCompleting
	return &Outcome{Approved: true, Receipt: &receipt}, nil
}

// OnEnvelopeReceived reports physical envelope receipt. It sends the second
// bank message (ConfirmDeposit): crediting is contingent on the envelope, not
// on the customer's stated intent. If the confirmation cannot reach the bank
// the deposit is ambiguous: journaled, escalated, and fatal to this
// transaction (not retriable).
func (s *Session) OnEnvelopeReceived(ctx context.Context, declaredAmount int64) (*Outcome, error) {
	s.mu.Lock()
	if s.state != domain.StateAwaitingEnvelope {
		terminal := s.state.Terminal()
		s.mu.Unlock()
		if terminal {
			return nil, apperror.ErrSessionEnded()
		}
		return nil, apperror.ErrInvalidState("no envelope awaited")
	}
	s.stopEnvelopeTimerLocked()
	txn := *s.pending
	cardID := s.card.CardID
	s.state = domain.StateAwaitingAuthorization
	s.mu.Unlock()

	s.journal.EnvelopeAccepted(ctx, cardID, declaredAmount)
	s.journal.BankRequest(ctx, msgConfirmDeposit, cardID, &declaredAmount)

	decision, err := s.bank.ConfirmDeposit(ctx, ports.DepositConfirmation{
		CardID:  cardID,
		Account: txn.Account,
		Amount:  declaredAmount,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.journal.BankResponse(ctx, msgConfirmDeposit, cardID, "unreachable")
		s.escalate(ctx, domain.ReconciliationCase{
			ID:         uuid.New(),
			TerminalID: s.cfg.TerminalID,
			CardID:     cardID,
			Account:    txn.Account,
			Amount:     declaredAmount,
			Reason:     domain.ReasonDepositUnconfirmed,
			CreatedAt:  time.Now().UTC(),
		})
		s.metrics.Transactions.WithLabelValues(string(txn.Type), "failed").Inc()
		s.pending = nil
		s.state = domain.StateDeclined
		s.log.Error().Err(err).Int64("declared_amount", declaredAmount).Msg("deposit accepted but unconfirmed")
		return nil, apperror.ErrDepositUnconfirmed(err)
	}

	if !decision.Approved {
		reason := decision.ReasonCode
		if reason == "" {
			reason = domain.ReasonDeclined
		}
		s.journal.BankResponse(ctx, msgConfirmDeposit, cardID, "declined:"+reason)
		s.pending = nil
		s.state = domain.StateDeclined
		s.metrics.Transactions.WithLabelValues(string(txn.Type), "declined").Inc()
		return &Outcome{ReasonCode: reason}, nil
	}

	s.journal.BankResponse(ctx, msgConfirmDeposit, cardID, "approved")
	txn.Amount = declaredAmount
	return s.completeApprovedLocked(ctx, txn, *decision)
}

// OnEnvelopeTimeout abandons a deposit whose envelope never arrived. No
// second bank message is sent, so nothing is credited. A late envelope event
// after the timeout (or vice versa) is ignored: first writer wins.
func (s *Session) OnEnvelopeTimeout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateAwaitingEnvelope {
		return
	}
	s.stopEnvelopeTimerLocked()
	s.journal.EnvelopeAbandoned(ctx, s.card.CardID)
	s.metrics.Transactions.WithLabelValues(string(domain.TransactionTypeDeposit), "abandoned").Inc()
	s.pending = nil
	s.state = domain.StateTransactionSelecting
}

// Cancel aborts the current interaction. It is rejected only while a bank
// request is in flight; a sent request cannot be un-sent. In the envelope
// wait it abandons the deposit and returns to transaction selection; anywhere
// else it ends the session and returns the card.
func (s *Session) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state.Terminal():
		return apperror.ErrSessionEnded()
	case s.state == domain.StateAwaitingAuthorization:
		return apperror.ErrCannotCancelInFlight()
	case s.state == domain.StateAwaitingEnvelope:
		s.stopEnvelopeTimerLocked()
		s.journal.EnvelopeAbandoned(ctx, s.card.CardID)
		s.journal.SessionCancelled(ctx, s.card.CardID)
		s.metrics.Transactions.WithLabelValues(string(domain.TransactionTypeDeposit), "abandoned").Inc()
		s.pending = nil
		s.state = domain.StateTransactionSelecting
		return nil
	default:
		s.journal.SessionCancelled(ctx, s.card.CardID)
		s.terminateLocked(ctx, domain.StateTerminatedReturned)
		return nil
	}
}

// EndSession either loops back for another transaction or ejects the card
// and terminates.
func (s *Session) EndSession(ctx context.Context, wantsAnother bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return apperror.ErrSessionEnded()
	}

	if wantsAnother {
		switch s.state {
		case domain.StateTransactionSelecting, domain.StateDeclined, domain.StateCompleting:
			s.state = domain.StateTransactionSelecting
			return nil
		default:
			return apperror.ErrInvalidState("cannot select another transaction in state " + string(s.state))
		}
	}

	s.terminateLocked(ctx, domain.StateTerminatedReturned)
	return nil
}

// terminateLocked moves the session to a terminal state and journals the card
// disposition. Caller holds s.mu.
func (s *Session) terminateLocked(ctx context.Context, terminal domain.SessionState) {
	s.stopEnvelopeTimerLocked()
	s.pending = nil
	s.state = terminal
	if terminal == domain.StateTerminatedReturned {
		s.journal.CardReturned(ctx, s.card.CardID)
		s.metrics.SessionsTerminated.WithLabelValues("returned").Inc()
	}
}

func (s *Session) stopEnvelopeTimerLocked() {
	if s.envelopeTimer != nil {
		s.envelopeTimer.Stop()
		s.envelopeTimer = nil
	}
}

// escalate pushes a reconciliation case; failure to enqueue is logged but
// must not mask the customer-facing error, the journal already has the facts.
func (s *Session) escalate(ctx context.Context, c domain.ReconciliationCase) {
	s.metrics.ReconciliationCases.Inc()
	if s.recon == nil {
		return
	}
	if err := s.recon.Enqueue(ctx, c); err != nil {
		s.log.Error().Err(err).Str("reason", string(c.Reason)).Msg("failed to enqueue reconciliation case")
	}
}
