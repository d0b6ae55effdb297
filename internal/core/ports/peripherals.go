package ports

import (
	"context"
	"errors"
	"time"

	"atm-transaction-core/internal/core/domain"
)

// ErrPeripheralFault is wrapped by PeripheralController implementations when
// hardware reports a fault.
var ErrPeripheralFault = errors.New("peripheral fault")

// PeripheralController is the thin command/result interface to the cash
// dispenser, envelope slot and receipt printer. Commands are issued only
// after bank approval; a nil return is the completion signal.
type PeripheralController interface {
	// Dispense pays out the given amount of cash.
	Dispense(ctx context.Context, amount int64) error
	// AcceptEnvelope unlocks the deposit slot for one envelope. Physical
	// receipt is delivered back to the session as an envelope event; the
	// acceptance window is enforced by the session's timer.
	AcceptEnvelope(ctx context.Context, timeout time.Duration) error
	// Print submits a receipt record to the printer.
	Print(ctx context.Context, receipt domain.Receipt) error
}
