package domain

// BankDecision is the bank authority's answer to an authorization or deposit
// confirmation request. The core relays it and never fabricates one.
type BankDecision struct {
	Approved         bool   `json:"approved"`
	ReasonCode       string `json:"reason_code,omitempty"`
	EndingBalance    *int64 `json:"ending_balance,omitempty"`
	AvailableBalance *int64 `json:"available_balance,omitempty"`
}

// Well-known reason codes surfaced to the customer.
const (
	ReasonBankUnreachable = "BANK_UNREACHABLE"
	ReasonDeclined        = "DECLINED"
)
