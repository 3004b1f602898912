package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/manafood/internal/server/http/dto"
)

// HealthHandler reports that the service is up.
type HealthHandler struct {
	response dto.HealthResponse
}

// NewHealthHandler creates HealthHandler with fixed status texts.
func NewHealthHandler(status, region string) *HealthHandler {
	return &HealthHandler{response: dto.HealthResponse{Status: status, Region: region}}
}

// Check handles GET /.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.response)
}
