package domain

// SessionState is the explicit lifecycle state of a customer session.
// A session is created on card insertion (there is no Idle session; an idle
// terminal simply holds no session) and ends in exactly one of the two
// terminated states, after which a fresh session is required.
type SessionState string

const (
	// StateCardInserted: card read, PIN not yet verified.
	StateCardInserted SessionState = "CARD_INSERTED"
	// StatePinPending: at least one PIN attempt made, none accepted yet.
	StatePinPending SessionState = "PIN_PENDING"
	// StateTransactionSelecting: PIN accepted, awaiting a transaction request.
	StateTransactionSelecting SessionState = "TRANSACTION_SELECTING"
	// StateAwaitingAuthorization: a request is in flight to the bank.
	// Cancellation is rejected here. A sent request cannot be un-sent.
	StateAwaitingAuthorization SessionState = "AWAITING_AUTHORIZATION"
	// StateAwaitingEnvelope: deposit approved, waiting for the physical
	// envelope or the acceptance timeout, whichever comes first.
	StateAwaitingEnvelope SessionState = "AWAITING_ENVELOPE"
	// StateDeclined: last transaction was declined or failed recoverably;
	// the customer may select another transaction without re-authenticating.
	StateDeclined SessionState = "DECLINED"
	// StateCompleting: transaction executed and receipt handled.
	StateCompleting SessionState = "COMPLETING"
	// StateTerminatedReturned: session over, card ejected to the customer.
	StateTerminatedReturned SessionState = "TERMINATED_RETURNED"
	// StateTerminatedRetained: session over, card kept by the machine.
	StateTerminatedRetained SessionState = "TERMINATED_RETAINED"
)

// Terminal reports whether the state is one of the two final states.
func (s SessionState) Terminal() bool {
	return s == StateTerminatedReturned || s == StateTerminatedRetained
}

// MaxPinAttempts is the number of consecutive PIN failures after which the
// card is permanently retained.
const MaxPinAttempts = 3
