package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses on the front
// surface and to display text on the customer console.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to the customer)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL): rejected before any bank contact ----

// Validation returns a VAL_001 error with a customer-facing message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount(message string) *AppError {
	return New("VAL_002", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrPinRejected(attemptsLeft int) *AppError {
	return New("AUTH_001", fmt.Sprintf("Invalid PIN, %d attempt(s) left", attemptsLeft), http.StatusUnauthorized)
}

func ErrCardRetained() *AppError {
	return New("AUTH_002", "Card retained after repeated PIN failure, contact your bank", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_004", "Invalid credentials", http.StatusUnauthorized)
}

// ---- Bank authority (BANK) ----

func ErrBankDeclined(reasonCode string) *AppError {
	return New("BANK_001", fmt.Sprintf("Transaction declined by bank (%s)", reasonCode), http.StatusPaymentRequired)
}

func ErrBankUnreachable(err error) *AppError {
	return Wrap("BANK_002", "Bank authority unreachable", http.StatusBadGateway, err)
}

// ErrDepositUnconfirmed is the ambiguous deposit case: envelope accepted but
// the confirmation could not be delivered. Escalated for reconciliation.
func ErrDepositUnconfirmed(err error) *AppError {
	return Wrap("BANK_003", "Deposit accepted but not confirmed, contact your bank", http.StatusBadGateway, err)
}

// ---- Peripheral hardware (HW) ----

func ErrDispenseFault(err error) *AppError {
	return Wrap("HW_001", "Cash dispenser fault", http.StatusInternalServerError, err)
}

func ErrPrintFault(err error) *AppError {
	return Wrap("HW_002", "Receipt printer fault", http.StatusInternalServerError, err)
}

func ErrEnvelopeSlotFault(err error) *AppError {
	return Wrap("HW_003", "Envelope slot fault", http.StatusInternalServerError, err)
}

// ---- Session lifecycle (SES) ----

func ErrSessionActive() *AppError {
	return New("SES_001", "Another customer session is in progress", http.StatusConflict)
}

func ErrNoActiveSession() *AppError {
	return New("SES_002", "No customer session in progress", http.StatusConflict)
}

func ErrCannotCancelInFlight() *AppError {
	return New("SES_003", "Cannot cancel while a bank request is in flight", http.StatusConflict)
}

func ErrSessionEnded() *AppError {
	return New("SES_004", "Session already ended", http.StatusConflict)
}

func ErrInvalidState(message string) *AppError {
	return New("SES_005", message, http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal terminal error", http.StatusInternalServerError, err)
}
