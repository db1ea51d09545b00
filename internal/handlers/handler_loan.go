package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{
		loanService: ls,
	}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.GET("/:id/schedule", h.getPaymentSchedule)
	}
}

// createLoan godoc
// @Summary Open a loan
// @Description Opens a loan for a customer and generates its flat-rate payment schedule
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to create loan"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := middleware.CreatorUserID(c)

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to create loan in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create loan"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags loans
// @Produce  json
// @Param   id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid loan ID"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to retrieve loan"
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		} else {
			logger.Error("Failed to get loan from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve loan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Description Retrieves loans, optionally scoped to one customer
// @Tags loans
// @Produce  json
// @Param   customerId query string false "Filter by customer"
// @Param   pageNumber query int false "1-indexed page number" default(1)
// @Param   pageSize query int false "Page size" default(10)
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid customerId"
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var customerID *uuid.UUID
	if raw := c.Query("customerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
			return
		}
		customerID = &id
	}
	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	loans, _, err := h.loanService.ListLoans(c.Request.Context(), customerID, pageNumber, pageSize)
	if err != nil {
		logger.Error("Failed to list loans from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list loans"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// getPaymentSchedule godoc
// @Summary Get a loan's payment schedule
// @Tags loans
// @Produce  json
// @Param   id path string true "Loan ID"
// @Success 200 {array} dto.PaymentScheduleResponse
// @Failure 400 {object} map[string]string "Invalid loan ID"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to retrieve schedule"
// @Security BearerAuth
// @Router /loans/{id}/schedule [get]
func (h *loanHandler) getPaymentSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	schedule, err := h.loanService.GetPaymentSchedule(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		} else {
			logger.Error("Failed to get payment schedule from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentScheduleResponses(schedule))
}
