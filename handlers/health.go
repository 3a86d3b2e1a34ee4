package handlers

import (
	"net/http"

	"bistrovoice/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot of Mongo and Redis.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
