package onboarding

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vendora/merchant-console/merchant-console-backend/internal/catalog"
	"vendora/merchant-console/merchant-console-backend/internal/tenant"
)

// Handler handles HTTP requests for merchant onboarding
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new onboarding handler
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers onboarding routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	merchant := router.Group("/merchant")
	{
		merchant.POST("/onboarding", h.register)
		merchant.GET("/onboarding/status/:tenantId", h.status)
		merchant.GET("/onboarding/summary/:tenantId", h.summary)
		merchant.GET("/onboarding/verticals", h.verticals)
		merchant.GET("/onboarding/plans", h.plans)
	}
}

func (h *Handler) register(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, RegistrationResponse{Success: false, Message: err.Error()})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, RegistrationResponse{Success: false, Message: verr.Error()})
		case errors.Is(err, tenant.ErrSubdomainTaken):
			c.JSON(http.StatusConflict, RegistrationResponse{Success: false, Message: err.Error()})
		default:
			h.logger.Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, RegistrationResponse{Success: false, Message: "registration failed"})
		}
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

func (h *Handler) status(c *gin.Context) {
	resp, err := h.service.Status(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "unknown tenant"})
			return
		}
		h.logger.Error("Status lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) summary(c *gin.Context) {
	resp, err := h.service.Summary(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "unknown tenant"})
			return
		}
		h.logger.Error("Summary build failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) verticals(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.ListVerticals())
}

func (h *Handler) plans(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.ListPlans())
}
