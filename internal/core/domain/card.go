package domain

// AccountRef identifies a bank account linked to a card.
type AccountRef string

// Card is the decoded content of an inserted ATM card.
// Immutable once read from the stripe; owned by a session for its duration
// and never persisted by the core.
type Card struct {
	CardID         string       `json:"card_id"`
	LinkedAccounts []AccountRef `json:"linked_accounts"`
}

// HasAccount reports whether the given account is linked to this card.
func (c Card) HasAccount(ref AccountRef) bool {
	for _, a := range c.LinkedAccounts {
		if a == ref {
			return true
		}
	}
	return false
}
