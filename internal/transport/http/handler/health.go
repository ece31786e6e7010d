package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health never touches the database.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
