package service

import (
	"time"

	"atm-transaction-core/config"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/pkg/apperror"
)

// OperatorAuthService implements ports.OperatorAuthService against the
// operator credentials carried in configuration. The terminal has exactly one
// maintenance account; there is no account store.
type OperatorAuthService struct {
	cfg      config.OperatorConfig
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
}

// NewOperatorAuthService creates a new OperatorAuthService.
func NewOperatorAuthService(cfg config.OperatorConfig, hashSvc ports.HashService, tokenSvc ports.TokenService) *OperatorAuthService {
	return &OperatorAuthService{cfg: cfg, hashSvc: hashSvc, tokenSvc: tokenSvc}
}

// Login verifies the operator credentials and issues a maintenance token.
func (s *OperatorAuthService) Login(username, passcode string) (string, time.Time, error) {
	if s.cfg.PasscodeHash == "" || username != s.cfg.Username {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(passcode, s.cfg.PasscodeHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(err)
	}
	return token, expiresAt, nil
}
