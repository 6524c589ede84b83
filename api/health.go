package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health estado del servicio
// @Summary Health check
// @Tags Sistema
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
