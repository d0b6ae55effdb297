package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReconciliationReason classifies why a case needs manual resolution.
type ReconciliationReason string

const (
	// ReasonDepositUnconfirmed: envelope physically accepted but the deposit
	// confirmation could not reach the bank; the customer may or may not be
	// credited and an operator must resolve it against the journal.
	ReasonDepositUnconfirmed ReconciliationReason = "DEPOSIT_UNCONFIRMED"
	// ReasonDispenseFault: the bank approved and debited but the dispenser
	// faulted, so the customer may not have received the cash.
	ReasonDispenseFault ReconciliationReason = "DISPENSE_FAULT"
)

// ReconciliationCase is an escalation record for an ambiguity the terminal
// cannot resolve on its own.
type ReconciliationCase struct {
	ID         uuid.UUID            `json:"id"`
	TerminalID string               `json:"terminal_id"`
	CardID     string               `json:"card_id"`
	Account    AccountRef           `json:"account"`
	Amount     int64                `json:"amount"`
	Reason     ReconciliationReason `json:"reason"`
	CreatedAt  time.Time            `json:"created_at"`
}
