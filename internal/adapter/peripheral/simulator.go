// Package peripheral provides the injectable stand-in for the physical cash
// dispenser, envelope slot and receipt printer. The production hardware
// driver lives outside this repository; the simulator honors the same
// command/result contract and can be scripted to fault.
package peripheral

import (
	"context"
	"fmt"
	"sync"
	"time"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"

	"github.com/rs/zerolog"
)

// Simulator implements ports.PeripheralController.
type Simulator struct {
	mu           sync.Mutex
	log          zerolog.Logger
	failDispense bool
	failAccept   bool
	failPrint    bool
}

// NewSimulator creates a simulator with all devices healthy.
func NewSimulator(log zerolog.Logger) *Simulator {
	return &Simulator{log: log}
}

// FailDispense scripts the dispenser to fault on subsequent commands.
func (s *Simulator) FailDispense(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDispense = fail
}

// FailAcceptEnvelope scripts the envelope slot to fault on subsequent commands.
func (s *Simulator) FailAcceptEnvelope(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAccept = fail
}

// FailPrint scripts the printer to fault on subsequent commands.
func (s *Simulator) FailPrint(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPrint = fail
}

// Dispense implements ports.PeripheralController.
func (s *Simulator) Dispense(_ context.Context, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDispense {
		return fmt.Errorf("dispenser: %w", ports.ErrPeripheralFault)
	}
	s.log.Info().Int64("amount", amount).Msg("sim: cash dispensed")
	return nil
}

// AcceptEnvelope implements ports.PeripheralController.
func (s *Simulator) AcceptEnvelope(_ context.Context, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAccept {
		return fmt.Errorf("envelope slot: %w", ports.ErrPeripheralFault)
	}
	s.log.Info().Dur("timeout", timeout).Msg("sim: envelope slot unlocked")
	return nil
}

// Print implements ports.PeripheralController.
func (s *Simulator) Print(_ context.Context, receipt domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPrint {
		return fmt.Errorf("printer: %w", ports.ErrPeripheralFault)
	}
	s.log.Info().
		Str("type", string(receipt.Type)).
		Str("account", string(receipt.Account)).
		Int64("amount", receipt.Amount).
		Time("at", receipt.Timestamp).
		Msg("sim: receipt printed")
	return nil
}
