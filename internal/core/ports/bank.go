package ports

import (
	"context"
	"errors"

	"atm-transaction-core/internal/core/domain"
)

// ErrBankUnreachable is wrapped by BankClient implementations when the bank
// authority cannot be reached or returns an unusable response. The state
// machine treats it as a decline for Authorize and as the fatal ambiguous
// case for ConfirmDeposit. Bank calls are never retried automatically.
var ErrBankUnreachable = errors.New("bank authority unreachable")

// AuthorizationRequest is the wire-shaped input to Authorize.
type AuthorizationRequest struct {
	CardID    string
	Type      domain.TransactionType
	Account   domain.AccountRef
	ToAccount domain.AccountRef
	Amount    int64
}

// DepositConfirmation is the second, post-envelope bank message for deposits.
type DepositConfirmation struct {
	CardID  string
	Account domain.AccountRef
	Amount  int64
}

// BankClient is the request/response protocol to the bank authority.
// Calls are synchronous and retry-free; each runs to completion or to a
// defined failure wrapping ErrBankUnreachable.
type BankClient interface {
	// VerifyPIN checks a PIN against the bank's records. The PIN travels to
	// the bank and nowhere else.
	VerifyPIN(ctx context.Context, cardID, pin string) (bool, error)
	// Authorize submits one transaction for approval.
	Authorize(ctx context.Context, req AuthorizationRequest) (*domain.BankDecision, error)
	// ConfirmDeposit reports physical envelope receipt so the bank can credit.
	ConfirmDeposit(ctx context.Context, req DepositConfirmation) (*domain.BankDecision, error)
}
