package handler

import (
	"net/http"
	"strconv"
	"time"

	"atm-transaction-core/internal/adapter/http/dto"
	"atm-transaction-core/internal/core/ports"
	"atm-transaction-core/pkg/apperror"
	"atm-transaction-core/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 50

// OperatorHandler exposes the maintenance API: login, journal tail and
// pending reconciliation cases.
type OperatorHandler struct {
	authSvc ports.OperatorAuthService
	journal ports.JournalStore
	recon   ports.ReconciliationQueue
}

// NewOperatorHandler creates a new OperatorHandler.
func NewOperatorHandler(authSvc ports.OperatorAuthService, journal ports.JournalStore, recon ports.ReconciliationQueue) *OperatorHandler {
	return &OperatorHandler{authSvc: authSvc, journal: journal, recon: recon}
}

// Login handles POST /api/v1/operator/login.
func (h *OperatorHandler) Login(c *gin.Context) {
	var req dto.OperatorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.authSvc.Login(req.Username, req.Passcode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// Journal handles GET /api/v1/operator/journal.
func (h *OperatorHandler) Journal(c *gin.Context) {
	limit := queryLimit(c)

	entries, err := h.journal.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.JournalEntryResponse{
			ID:         e.ID.String(),
			Seq:        e.Seq,
			Timestamp:  e.Timestamp.Format(time.RFC3339),
			TerminalID: e.TerminalID,
			Event:      string(e.Event),
			CardID:     e.CardID,
			Amount:     e.Amount,
			Detail:     e.Detail,
		})
	}

	response.OK(c, dto.JournalListResponse{Items: items, Count: len(items)})
}

// Reconciliation handles GET /api/v1/operator/reconciliation.
func (h *OperatorHandler) Reconciliation(c *gin.Context) {
	limit := queryLimit(c)

	cases, err := h.recon.Pending(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.ReconciliationCaseResponse, 0, len(cases))
	for _, rc := range cases {
		items = append(items, dto.ReconciliationCaseResponse{
			ID:         rc.ID.String(),
			TerminalID: rc.TerminalID,
			CardID:     rc.CardID,
			Account:    string(rc.Account),
			Amount:     rc.Amount,
			Reason:     string(rc.Reason),
			CreatedAt:  rc.CreatedAt.Format(time.RFC3339),
		})
	}

	response.OK(c, dto.ReconciliationListResponse{Items: items, Count: len(items)})
}

// queryLimit parses the limit query parameter, clamped to [1, 500].
func queryLimit(c *gin.Context) int {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 500 {
		limit = 500
	}
	return limit
}

// HealthCheck handles GET /health, a deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
