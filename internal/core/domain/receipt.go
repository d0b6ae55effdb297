package domain

import "time"

// Receipt is the printed record of one approved, fully executed transaction.
// Built only after bank approval (and, for deposits, after the confirmation
// round-trip); immutable; handed to the printer and then discarded by the core.
type Receipt struct {
	Timestamp        time.Time       `json:"timestamp"`
	TerminalID       string          `json:"terminal_id"`
	Location         string          `json:"location"`
	Type             TransactionType `json:"type"`
	Account          AccountRef      `json:"account"`
	ToAccount        AccountRef      `json:"to_account,omitempty"`
	Amount           int64           `json:"amount"`
	EndingBalance    *int64          `json:"ending_balance,omitempty"`
	AvailableBalance *int64          `json:"available_balance,omitempty"`
}

// BuildReceipt assembles a receipt from the executed transaction and the
// approving bank decision. Balances are the bank's, never computed locally.
func BuildReceipt(terminalID, location string, txn Transaction, decision BankDecision, now time.Time) Receipt {
	return Receipt{
		Timestamp:        now,
		TerminalID:       terminalID,
		Location:         location,
		Type:             txn.Type,
		Account:          txn.Account,
		ToAccount:        txn.ToAccount,
		Amount:           txn.Amount,
		EndingBalance:    decision.EndingBalance,
		AvailableBalance: decision.AvailableBalance,
	}
}
