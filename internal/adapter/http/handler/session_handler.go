package handler

import (
	"time"

	"atm-transaction-core/internal/adapter/http/dto"
	"atm-transaction-core/internal/core/domain"
	"atm-transaction-core/internal/session"
	"atm-transaction-core/internal/terminal"
	"atm-transaction-core/pkg/apperror"
	"atm-transaction-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the customer-facing console surface: card insertion,
// PIN entry, transaction selection, envelope events, cancel and session end.
type SessionHandler struct {
	terminal *terminal.Terminal
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(t *terminal.Terminal) *SessionHandler {
	return &SessionHandler{terminal: t}
}

// InsertCard handles POST /api/v1/session/card.
func (h *SessionHandler) InsertCard(c *gin.Context) {
	var req dto.InsertCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	accounts := make([]domain.AccountRef, 0, len(req.Accounts))
	for _, a := range req.Accounts {
		accounts = append(accounts, domain.AccountRef(a))
	}

	s, err := h.terminal.InsertCard(c.Request.Context(), domain.Card{
		CardID:         req.CardID,
		LinkedAccounts: accounts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SessionResponse{
		SessionID: s.ID().String(),
		State:     string(s.State()),
	})
}

// SubmitPIN handles POST /api/v1/session/pin.
func (h *SessionHandler) SubmitPIN(c *gin.Context) {
	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.terminal.SubmitPIN(c.Request.Context(), req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PinResponse{
		Accepted:     outcome.Accepted,
		AttemptsLeft: outcome.AttemptsLeft,
		CardRetained: outcome.CardRetained,
	})
}

// SelectTransaction handles POST /api/v1/session/transaction.
func (h *SessionHandler) SelectTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var txn domain.Transaction
	switch domain.TransactionType(req.Type) {
	case domain.TransactionTypeWithdrawal:
		txn = domain.NewWithdrawal(domain.AccountRef(req.Account), req.Amount)
	case domain.TransactionTypeDeposit:
		txn = domain.NewDeposit(domain.AccountRef(req.Account), req.Amount)
	case domain.TransactionTypeTransfer:
		txn = domain.NewTransfer(domain.AccountRef(req.Account), domain.AccountRef(req.ToAccount), req.Amount)
	case domain.TransactionTypeBalanceInquiry:
		txn = domain.NewBalanceInquiry(domain.AccountRef(req.Account))
	default:
		response.Error(c, apperror.Validation("unknown transaction type"))
		return
	}

	outcome, err := h.terminal.SelectTransaction(c.Request.Context(), txn)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toOutcomeResponse(outcome))
}

// EnvelopeReceived handles POST /api/v1/session/envelope.
func (h *SessionHandler) EnvelopeReceived(c *gin.Context) {
	var req dto.EnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.terminal.EnvelopeReceived(c.Request.Context(), req.DeclaredAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toOutcomeResponse(outcome))
}

// Cancel handles POST /api/v1/session/cancel.
func (h *SessionHandler) Cancel(c *gin.Context) {
	if err := h.terminal.Cancel(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cancelled": true})
}

// EndSession handles POST /api/v1/session/end.
func (h *SessionHandler) EndSession(c *gin.Context) {
	var req dto.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.terminal.EndSession(c.Request.Context(), req.Another); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"another": req.Another})
}

// GetState handles GET /api/v1/session.
func (h *SessionHandler) GetState(c *gin.Context) {
	s, err := h.terminal.Session()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SessionResponse{
		SessionID: s.ID().String(),
		State:     string(s.State()),
	})
}

// toOutcomeResponse converts a session outcome to its DTO.
func toOutcomeResponse(o *session.Outcome) dto.TransactionOutcomeResponse {
	resp := dto.TransactionOutcomeResponse{
		Approved:         o.Approved,
		ReasonCode:       o.ReasonCode,
		AwaitingEnvelope: o.AwaitingEnvelope,
	}
	if o.Receipt != nil {
		r := o.Receipt
		resp.Receipt = &dto.ReceiptResponse{
			Timestamp:        r.Timestamp.Format(time.RFC3339),
			TerminalID:       r.TerminalID,
			Location:         r.Location,
			Type:             string(r.Type),
			Account:          string(r.Account),
			ToAccount:        string(r.ToAccount),
			Amount:           r.Amount,
			EndingBalance:    r.EndingBalance,
			AvailableBalance: r.AvailableBalance,
		}
	}
	return resp
}
