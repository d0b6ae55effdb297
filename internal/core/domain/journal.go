package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind classifies a journal entry.
type EventKind string

const (
	EventStartup           EventKind = "STARTUP"
	EventShutdown          EventKind = "SHUTDOWN"
	EventCardInserted      EventKind = "CARD_INSERTED"
	EventPinAttempt        EventKind = "PIN_ATTEMPT"
	EventBankRequest       EventKind = "BANK_REQUEST"
	EventBankResponse      EventKind = "BANK_RESPONSE"
	EventDispense          EventKind = "DISPENSE"
	EventEnvelopeAccepted  EventKind = "ENVELOPE_ACCEPTED"
	EventEnvelopeAbandoned EventKind = "ENVELOPE_ABANDONED"
	EventReceiptPrinted    EventKind = "RECEIPT_PRINTED"
	EventPeripheralFault   EventKind = "PERIPHERAL_FAULT"
	EventCardRetained      EventKind = "CARD_RETAINED"
	EventCardReturned      EventKind = "CARD_RETURNED"
	EventSessionCancelled  EventKind = "SESSION_CANCELLED"
)

// Entry is one append-only journal record. Entries may carry card numbers and
// amounts but, by construction, there is no field that could hold a PIN: the
// no-PIN guarantee is the type, not a redaction filter.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Seq        uint64    `json:"seq"`
	Timestamp  time.Time `json:"timestamp"`
	TerminalID string    `json:"terminal_id"`
	Event      EventKind `json:"event"`
	CardID     string    `json:"card_id,omitempty"`
	Amount     *int64    `json:"amount,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}
