// Package bank implements ports.BankClient over the bank authority's HTTPS
// JSON protocol. Calls are retry-free: a failed request surfaces as
// ports.ErrBankUnreachable and is never replayed silently.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"atm-transaction-core/config"
	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the HTTP bank authority client.
type Client struct {
	baseURL    string
	apiKey     string
	terminalID string
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a bank client.
func New(cfg config.BankConfig, terminalID string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		terminalID: terminalID,
		httpClient: httpClient,
		log:        log,
	}
}

type verifyPINRequest struct {
	TerminalID string `json:"terminal_id"`
	CardID     string `json:"card_id"`
	PIN        string `json:"pin"`
}

type verifyPINResponse struct {
	Match bool `json:"match"`
}

type authorizeRequest struct {
	TerminalID string `json:"terminal_id"`
	CardID     string `json:"card_id"`
	Type       string `json:"transaction_type"`
	Account    string `json:"account"`
	ToAccount  string `json:"to_account,omitempty"`
	Amount     int64  `json:"amount"`
}

type confirmDepositRequest struct {
	TerminalID string `json:"terminal_id"`
	CardID     string `json:"card_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
}

type decisionResponse struct {
	Approved         bool   `json:"approved"`
	ReasonCode       string `json:"reason_code"`
	EndingBalance    *int64 `json:"ending_balance,omitempty"`
	AvailableBalance *int64 `json:"available_balance,omitempty"`
}

// VerifyPIN implements ports.BankClient.
func (c *Client) VerifyPIN(ctx context.Context, cardID, pin string) (bool, error) {
	var resp verifyPINResponse
	err := c.post(ctx, "/v1/pin/verify", verifyPINRequest{
		TerminalID: c.terminalID,
		CardID:     cardID,
		PIN:        pin,
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Match, nil
}

// Authorize implements ports.BankClient.
func (c *Client) Authorize(ctx context.Context, req ports.AuthorizationRequest) (*domain.BankDecision, error) {
	var resp decisionResponse
	err := c.post(ctx, "/v1/transactions/authorize", authorizeRequest{
		TerminalID: c.terminalID,
		CardID:     req.CardID,
		Type:       string(req.Type),
		Account:    string(req.Account),
		ToAccount:  string(req.ToAccount),
		Amount:     req.Amount,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return decisionFromResponse(resp), nil
}

// ConfirmDeposit implements ports.BankClient.
func (c *Client) ConfirmDeposit(ctx context.Context, req ports.DepositConfirmation) (*domain.BankDecision, error) {
	var resp decisionResponse
	err := c.post(ctx, "/v1/deposits/confirm", confirmDepositRequest{
		TerminalID: c.terminalID,
		CardID:     req.CardID,
		Account:    string(req.Account),
		Amount:     req.Amount,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return decisionFromResponse(resp), nil
}

func decisionFromResponse(resp decisionResponse) *domain.BankDecision {
	return &domain.BankDecision{
		Approved:         resp.Approved,
		ReasonCode:       resp.ReasonCode,
		EndingBalance:    resp.EndingBalance,
		AvailableBalance: resp.AvailableBalance,
	}
}

// post sends one JSON request and decodes the response. Any transport error,
// non-200 status or undecodable body collapses to ErrBankUnreachable: the
// core never fabricates a decision from a broken exchange.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal bank request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build bank request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", path, ports.ErrBankUnreachable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w: status %d", path, ports.ErrBankUnreachable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: decode response: %v", path, ports.ErrBankUnreachable, err)
	}
	return nil
}
