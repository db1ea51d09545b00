package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// smsHandler handles HTTP requests related to SMS templates and history.
type smsHandler struct {
	smsService portssvc.SmsSvcFacade
}

func newSmsHandler(ss portssvc.SmsSvcFacade) *smsHandler {
	return &smsHandler{
		smsService: ss,
	}
}

// registerSmsRoutes registers routes related to notifications. Template
// management is restricted to administrators.
func registerSmsRoutes(rg *gin.RouterGroup, smsService portssvc.SmsSvcFacade) {
	h := newSmsHandler(smsService)

	sms := rg.Group("/sms")
	{
		sms.POST("/templates", middleware.RequireRole(string(domain.RoleAdmin)), h.createTemplate)
		sms.GET("/templates", h.listTemplates)
		sms.GET("/history", h.listHistory)
	}
}

// createTemplate godoc
// @Summary Create an SMS template
// @Description Registers a notification template. The template name matches a transaction type to enable notifications for it. Admin only.
// @Tags sms
// @Accept  json
// @Produce  json
// @Param   template body dto.CreateSmsTemplateRequest true "Template details"
// @Success 201 {object} dto.SmsTemplateResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 409 {object} map[string]string "Template name already exists"
// @Failure 500 {object} map[string]string "Failed to create template"
// @Security BearerAuth
// @Router /sms/templates [post]
func (h *smsHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSmsTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID := middleware.CreatorUserID(c)

	template, err := h.smsService.CreateTemplate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Template name already exists"})
		} else {
			logger.Error("Failed to create SMS template in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSmsTemplateResponse(template))
}

// listTemplates godoc
// @Summary List SMS templates
// @Tags sms
// @Produce  json
// @Success 200 {array} dto.SmsTemplateResponse
// @Failure 500 {object} map[string]string "Failed to list templates"
// @Security BearerAuth
// @Router /sms/templates [get]
func (h *smsHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.smsService.ListTemplates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list SMS templates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list templates"})
		return
	}

	responses := make([]dto.SmsTemplateResponse, len(templates))
	for i := range templates {
		responses[i] = dto.ToSmsTemplateResponse(&templates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// listHistory godoc
// @Summary List notification history
// @Description Retrieves paginated notification history, newest first
// @Tags sms
// @Produce  json
// @Param   customerId query string false "Filter by customer"
// @Param   pageNumber query int false "1-indexed page number" default(1)
// @Param   pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.SmsHistoryListResponse
// @Failure 400 {object} map[string]string "Invalid customerId"
// @Failure 500 {object} map[string]string "Failed to list history"
// @Security BearerAuth
// @Router /sms/history [get]
func (h *smsHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListSmsHistoryParams{}
	if raw := c.Query("customerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customerId"})
			return
		}
		params.CustomerID = &id
	}
	params.PageNumber, _ = strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	params.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	resp, err := h.smsService.ListHistory(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list SMS history from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list history"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
