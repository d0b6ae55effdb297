// Package journal implements the terminal's append-only transaction journal.
// Every security-relevant step of a session is recorded here: bank messages
// and their responses, cash dispensed, envelopes received, cards retained.
// Entries carry card numbers and amounts but never a PIN; the entry type has
// no field that could hold one, and neither does any helper on the recorder.
package journal

import (
	"context"
	"sync"
	"time"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Recorder assigns each entry a process-monotonic sequence number, mirrors it
// to the structured log, and appends it to the store. Appends happen in call
// order under the recorder lock, so within a session a response entry can
// never precede its request entry.
type Recorder struct {
	mu         sync.Mutex
	seq        uint64
	terminalID string
	store      ports.JournalStore
	log        zerolog.Logger
}

// New creates a Recorder. A nil store keeps journaling to the logger only.
func New(terminalID string, store ports.JournalStore, log zerolog.Logger) *Recorder {
	return &Recorder{terminalID: terminalID, store: store, log: log}
}

func (r *Recorder) record(ctx context.Context, e domain.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	e.ID = uuid.New()
	e.Seq = r.seq
	e.Timestamp = time.Now().UTC()
	e.TerminalID = r.terminalID

	ev := r.log.Info().
		Uint64("seq", e.Seq).
		Str("event", string(e.Event))
	if e.CardID != "" {
		ev = ev.Str("card_id", e.CardID)
	}
	if e.Amount != nil {
		ev = ev.Int64("amount", *e.Amount)
	}
	if e.Detail != "" {
		ev = ev.Str("detail", e.Detail)
	}
	ev.Msg("journal")

	if r.store != nil {
		// The terminal keeps serving if the store is down; the structured
		// log above still carries the event.
		if err := r.store.Append(ctx, e); err != nil {
			r.log.Error().Err(err).Uint64("seq", e.Seq).Str("event", string(e.Event)).Msg("journal append failed")
		}
	}
}

func (r *Recorder) Startup(ctx context.Context) {
	r.record(ctx, domain.Entry{Event: domain.EventStartup})
}

func (r *Recorder) Shutdown(ctx context.Context) {
	r.record(ctx, domain.Entry{Event: domain.EventShutdown})
}

func (r *Recorder) CardInserted(ctx context.Context, cardID string) {
	r.record(ctx, domain.Entry{Event: domain.EventCardInserted, CardID: cardID})
}

// PinAttempt records the outcome of a PIN attempt ("accepted", "rejected",
// "retained"). The attempted value itself is not representable here.
func (r *Recorder) PinAttempt(ctx context.Context, cardID, outcome string) {
	r.record(ctx, domain.Entry{Event: domain.EventPinAttempt, CardID: cardID, Detail: outcome})
}

// BankRequest records a message sent to the bank: kind is the message name
// (verify_pin, authorize, confirm_deposit).
func (r *Recorder) BankRequest(ctx context.Context, kind, cardID string, amount *int64) {
	r.record(ctx, domain.Entry{Event: domain.EventBankRequest, CardID: cardID, Amount: amount, Detail: kind})
}

// BankResponse records the bank's answer to a previously journaled request.
func (r *Recorder) BankResponse(ctx context.Context, kind, cardID, result string) {
	r.record(ctx, domain.Entry{Event: domain.EventBankResponse, CardID: cardID, Detail: kind + ":" + result})
}

func (r *Recorder) Dispense(ctx context.Context, cardID string, amount int64) {
	r.record(ctx, domain.Entry{Event: domain.EventDispense, CardID: cardID, Amount: &amount})
}

func (r *Recorder) EnvelopeAccepted(ctx context.Context, cardID string, declaredAmount int64) {
	r.record(ctx, domain.Entry{Event: domain.EventEnvelopeAccepted, CardID: cardID, Amount: &declaredAmount})
}

func (r *Recorder) EnvelopeAbandoned(ctx context.Context, cardID string) {
	r.record(ctx, domain.Entry{Event: domain.EventEnvelopeAbandoned, CardID: cardID})
}

func (r *Recorder) ReceiptPrinted(ctx context.Context, cardID string, amount int64) {
	r.record(ctx, domain.Entry{Event: domain.EventReceiptPrinted, CardID: cardID, Amount: &amount})
}

// PeripheralFault records a hardware fault: device is "dispenser", "printer"
// or "envelope_slot".
func (r *Recorder) PeripheralFault(ctx context.Context, cardID, device string, amount *int64) {
	r.record(ctx, domain.Entry{Event: domain.EventPeripheralFault, CardID: cardID, Amount: amount, Detail: device})
}

func (r *Recorder) CardRetained(ctx context.Context, cardID string) {
	r.record(ctx, domain.Entry{Event: domain.EventCardRetained, CardID: cardID})
}

func (r *Recorder) CardReturned(ctx context.Context, cardID string) {
	r.record(ctx, domain.Entry{Event: domain.EventCardReturned, CardID: cardID})
}

func (r *Recorder) SessionCancelled(ctx context.Context, cardID string) {
	r.record(ctx, domain.Entry{Event: domain.EventSessionCancelled, CardID: cardID})
}
