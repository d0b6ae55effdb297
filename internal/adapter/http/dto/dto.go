package dto

// InsertCardRequest starts a customer session. The card reader reports the
// card identifier and the accounts linked to it.
type InsertCardRequest struct {
	CardID   string   `json:"card_id" binding:"required,min=1,max=32"`
	Accounts []string `json:"accounts" binding:"required,min=1,dive,required"`
}

// PinRequest is one PIN attempt. The value is forwarded to the bank verbatim
// and appears in no response, log or journal entry.
type PinRequest struct {
	Pin string `json:"pin" binding:"required,min=4,max=12"`
}

// TransactionRequest selects one transaction for the authenticated session.
type TransactionRequest struct {
	Type      string `json:"type" binding:"required,oneof=WITHDRAWAL DEPOSIT TRANSFER BALANCE_INQUIRY"`
	Account   string `json:"account" binding:"required"`
	ToAccount string `json:"to_account,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
}

// EnvelopeRequest reports physical envelope receipt during a deposit.
type EnvelopeRequest struct {
	DeclaredAmount int64 `json:"declared_amount" binding:"required,gt=0"`
}

// EndSessionRequest answers the another-transaction prompt.
type EndSessionRequest struct {
	Another bool `json:"another"`
}

// OperatorLoginRequest is the request body for the maintenance API login.
type OperatorLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

// SessionResponse describes the live session.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
}

// PinResponse is the result of one PIN attempt.
type PinResponse struct {
	Accepted     bool `json:"accepted"`
	AttemptsLeft int  `json:"attempts_left,omitempty"`
	CardRetained bool `json:"card_retained,omitempty"`
}

// ReceiptResponse is the printed record returned to the console.
type ReceiptResponse struct {
	Timestamp        string `json:"timestamp"`
	TerminalID       string `json:"terminal_id"`
	Location         string `json:"location"`
	Type             string `json:"type"`
	Account          string `json:"account"`
	ToAccount        string `json:"to_account,omitempty"`
	Amount           int64  `json:"amount"`
	EndingBalance    *int64 `json:"ending_balance,omitempty"`
	AvailableBalance *int64 `json:"available_balance,omitempty"`
}

// TransactionOutcomeResponse is the result of a transaction that reached the
// bank: approved with a receipt, approved and awaiting an envelope, or
// declined with the bank's reason code.
type TransactionOutcomeResponse struct {
	Approved         bool             `json:"approved"`
	ReasonCode       string           `json:"reason_code,omitempty"`
	AwaitingEnvelope bool             `json:"awaiting_envelope,omitempty"`
	Receipt          *ReceiptResponse `json:"receipt,omitempty"`
}

// LoginResponse is the response body for a successful operator login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// JournalEntryResponse is one journal record for the operator API.
type JournalEntryResponse struct {
	ID         string `json:"id"`
	Seq        uint64 `json:"seq"`
	Timestamp  string `json:"timestamp"`
	TerminalID string `json:"terminal_id"`
	Event      string `json:"event"`
	CardID     string `json:"card_id,omitempty"`
	Amount     *int64 `json:"amount,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// JournalListResponse wraps the journal tail.
type JournalListResponse struct {
	Items []JournalEntryResponse `json:"items"`
	Count int                    `json:"count"`
}

// ReconciliationCaseResponse is one open reconciliation case.
type ReconciliationCaseResponse struct {
	ID         string `json:"id"`
	TerminalID string `json:"terminal_id"`
	CardID     string `json:"card_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	Reason     string `json:"reason"`
	CreatedAt  string `json:"created_at"`
}

// ReconciliationListResponse wraps the pending case list.
type ReconciliationListResponse struct {
	Items []ReconciliationCaseResponse `json:"items"`
	Count int                          `json:"count"`
}
