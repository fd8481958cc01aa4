package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/:tenantId", h.Get)
	r.PUT("/:tenantId", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	prefs, err := h.service.Get(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) Update(c *gin.Context) {
	var payload MerchantSettings
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	payload.TenantID = c.Param("tenantId")
	if err := h.service.Update(c.Request.Context(), &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
