package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chartOfAccountHandler handles HTTP requests related to the chart of accounts.
type chartOfAccountHandler struct {
	accountService portssvc.ChartOfAccountSvcFacade
}

func newChartOfAccountHandler(as portssvc.ChartOfAccountSvcFacade) *chartOfAccountHandler {
	return &chartOfAccountHandler{
		accountService: as,
	}
}

// registerChartOfAccountRoutes registers routes related to the chart of
// accounts. Account creation is restricted to administrators.
func registerChartOfAccountRoutes(rg *gin.RouterGroup, accountService portssvc.ChartOfAccountSvcFacade) {
	h := newChartOfAccountHandler(accountService)

	accounts := rg.Group("/chart-of-accounts")
	{
		accounts.POST("", middleware.RequireRole(string(domain.RoleAdmin)), h.createAccount)
		accounts.GET("", h.listAccounts)
	}
}

// createAccount godoc
// @Summary Create a ledger account
// @Description Adds an account to the chart of accounts. Admin only.
// @Tags chart-of-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateChartOfAccountRequest true "Account details"
// @Success 201 {object} dto.ChartOfAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /chart-of-accounts [post]
func (h *chartOfAccountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChartOfAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := middleware.CreatorUserID(c)

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Account code already exists"})
		} else {
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChartOfAccountResponse(account))
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Retrieves all ledger accounts ordered by account code
// @Tags chart-of-accounts
// @Produce  json
// @Success 200 {array} dto.ChartOfAccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /chart-of-accounts [get]
func (h *chartOfAccountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChartOfAccountResponses(accounts))
}
