package handler

import (
	"errors"
	"net/http"

	"aether/internal/model"
	"aether/internal/observability/metrics"
	"aether/internal/service"

	"github.com/gin-gonic/gin"
)

// PricingHandler handles investment-calculator HTTP requests
type PricingHandler struct {
	pricing *service.PricingService
	metrics *metrics.SiteMetrics
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricing *service.PricingService, m *metrics.SiteMetrics) *PricingHandler {
	return &PricingHandler{pricing: pricing, metrics: m}
}

// Quote handles POST /api/v1/quote
func (h *PricingHandler) Quote(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Invalid JSON"})
		return
	}

	breakdown, err := h.pricing.Quote(req.UnitCode, req.FloorBand)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUnitCode) {
			c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Unknown unit code"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.Ack{OK: false, Error: "Quote failed"})
		return
	}

	h.metrics.ObserveQuote(req.UnitCode)
	c.JSON(http.StatusOK, model.QuoteResponse{
		PriceBreakdown: *breakdown,
		Loan:           h.pricing.DefaultLoan(breakdown.TotalPrice),
	})
}

// EMI handles POST /api/v1/emi
func (h *PricingHandler) EMI(c *gin.Context) {
	var req model.EMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Invalid JSON"})
		return
	}

	resp, err := h.pricing.Installment(&req)
	switch {
	case errors.Is(err, service.ErrUnknownUnitCode):
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Unknown unit code"})
	case errors.Is(err, service.ErrMissingPrincipal):
		c.JSON(http.StatusBadRequest, model.Ack{OK: false, Error: "Missing principal"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, model.Ack{OK: false, Error: "EMI computation failed"})
	default:
		h.metrics.ObserveEMI()
		c.JSON(http.StatusOK, resp)
	}
}

// Catalog handles GET /api/v1/catalog
func (h *PricingHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, model.CatalogResponse{
		Units:      service.Units(),
		FloorBands: service.FloorBands(),
	})
}
