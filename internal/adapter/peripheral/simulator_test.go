package peripheral

import (
	"bytes"
	"context"
	"testing"
	"time"

	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newSim() *Simulator {
	return NewSimulator(logger.NewWithWriter("error", &bytes.Buffer{}))
}

func TestSimulator_HealthyDevices(t *testing.T) {
	s := newSim()
	ctx := context.Background()

	assert.NoError(t, s.Dispense(ctx, 40))
	assert.NoError(t, s.AcceptEnvelope(ctx, time.Minute))
	assert.NoError(t, s.Print(ctx, domain.Receipt{Type: domain.TransactionTypeWithdrawal, Amount: 40}))
}

func TestSimulator_ScriptedFaults(t *testing.T) {
	s := newSim()
	ctx := context.Background()

	s.FailDispense(true)
	assert.ErrorIs(t, s.Dispense(ctx, 40), ports.ErrPeripheralFault)

	s.FailAcceptEnvelope(true)
	assert.ErrorIs(t, s.AcceptEnvelope(ctx, time.Minute), ports.ErrPeripheralFault)

	s.FailPrint(true)
	assert.ErrorIs(t, s.Print(ctx, domain.Receipt{}), ports.ErrPeripheralFault)

	// Faults clear.
	s.FailDispense(false)
	assert.NoError(t, s.Dispense(ctx, 20))
}
