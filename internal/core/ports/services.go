package ports

import "time"

// HashService handles operator passcode hashing (Argon2id).
type HashService interface {
	Hash(passcode string) (string, error)
	Verify(passcode string, hash string) (bool, error)
}

// TokenService handles JWT tokens for the operator maintenance API.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator   string
	TerminalID string
}

// OperatorAuthService authenticates terminal operators.
type OperatorAuthService interface {
	Login(username, passcode string) (string, time.Time, error) // token, expiry, error
}
