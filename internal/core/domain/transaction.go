package domain

import (
	"errors"

	"github.com/google/uuid"
)

// TransactionType represents the kind of customer transaction.
type TransactionType string

const (
	TransactionTypeWithdrawal     TransactionType = "WITHDRAWAL"
	TransactionTypeDeposit        TransactionType = "DEPOSIT"
	TransactionTypeTransfer       TransactionType = "TRANSFER"
	TransactionTypeBalanceInquiry TransactionType = "BALANCE_INQUIRY"
)

// Structural validation errors, raised before any bank contact.
var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrNotCashMultiple   = errors.New("withdrawal amount must be a multiple of the cash unit")
	ErrSameAccount       = errors.New("transfer source and destination must differ")
	ErrAccountNotLinked  = errors.New("account is not linked to the inserted card")
	ErrUnknownType       = errors.New("unknown transaction type")
)

// Transaction is one customer request, immutable once submitted to the bank.
// Account is the source (or inquiry) account; ToAccount is set for transfers only.
// Amount is in whole currency units and is the declared amount for deposits.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Type      TransactionType `json:"type"`
	Account   AccountRef      `json:"account"`
	ToAccount AccountRef      `json:"to_account,omitempty"`
	Amount    int64           `json:"amount"`
}

// NewWithdrawal builds a cash withdrawal request.
func NewWithdrawal(account AccountRef, amount int64) Transaction {
	return Transaction{ID: uuid.New(), Type: TransactionTypeWithdrawal, Account: account, Amount: amount}
}

// NewDeposit builds an envelope deposit request with the customer's declared amount.
func NewDeposit(account AccountRef, declaredAmount int64) Transaction {
	return Transaction{ID: uuid.New(), Type: TransactionTypeDeposit, Account: account, Amount: declaredAmount}
}

// NewTransfer builds a transfer between two linked accounts.
func NewTransfer(from, to AccountRef, amount int64) Transaction {
	return Transaction{ID: uuid.New(), Type: TransactionTypeTransfer, Account: from, ToAccount: to, Amount: amount}
}

// NewBalanceInquiry builds a balance inquiry for one account.
func NewBalanceInquiry(account AccountRef) Transaction {
	return Transaction{ID: uuid.New(), Type: TransactionTypeBalanceInquiry, Account: account}
}

// Validate checks the structural constraints that must hold before the request
// may be sent to the bank: positive amounts, withdrawal in multiples of the
// cash unit, transfer target distinct from source, accounts linked to the card.
func (t Transaction) Validate(card Card, cashUnit int64) error {
	if !card.HasAccount(t.Account) {
		return ErrAccountNotLinked
	}

	switch t.Type {
	case TransactionTypeWithdrawal:
		if t.Amount <= 0 {
			return ErrAmountNotPositive
		}
		if t.Amount%cashUnit != 0 {
			return ErrNotCashMultiple
		}
	case TransactionTypeDeposit:
		if t.Amount <= 0 {
			return ErrAmountNotPositive
		}
	case TransactionTypeTransfer:
		if t.Amount <= 0 {
			return ErrAmountNotPositive
		}
		if t.ToAccount == t.Account {
			return ErrSameAccount
		}
		if !card.HasAccount(t.ToAccount) {
			return ErrAccountNotLinked
		}
	case TransactionTypeBalanceInquiry:
		// No amount to check.
	default:
		return ErrUnknownType
	}
	return nil
}
