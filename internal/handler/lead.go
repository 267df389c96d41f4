package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aether/internal/model"
	"aether/internal/repository"
	"aether/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService  *service.LeadService
	repo         *repository.PostgresRepository
	defaultLimit int
	maxLimit     int
}

// NewLeadHandler creates a new lead handler. repo may be nil when the
// server runs with the log-only sink.
func NewLeadHandler(leadService *service.LeadService, repo *repository.PostgresRepository, defaultLimit, maxLimit int) *LeadHandler {
	return &LeadHandler{
		leadService:  leadService,
		repo:         repo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Submit handles POST /api/v1/lead
func (h *LeadHandler) Submit(c *gin.Context) {
	var req model.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Invalid JSON"})
		return
	}

	_, err := h.leadService.Submit(c.Request.Context(), &req)
	switch {
	case errors.Is(err, service.ErrMissingRequiredField):
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Missing required fields"})
	case errors.Is(err, service.ErrInvalidPhoneFormat):
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Invalid phone"})
	case errors.Is(err, service.ErrLeadNotRecorded):
		c.JSON(http.StatusInternalServerError, model.Ack{OK: false, Error: "Failed to record lead"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, model.Ack{OK: false, Error: "Internal error"})
	default:
		c.JSON(http.StatusOK, model.Ack{OK: true})
	}
}

// Recent handles GET /api/v1/leads
func (h *LeadHandler) Recent(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, model.Ack{OK: false, Error: "Lead storage is not enabled"})
		return
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	leads, err := h.repo.RecentLeads(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Ack{OK: false, Error: "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, model.LeadListResponse{Leads: leads, Total: len(leads)})
}
