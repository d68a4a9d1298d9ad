package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Home is the landing payload for unauthenticated clients.
func Home(c *gin.Context) {
	RespondOK(c, gin.H{
		"name":    "MindCare",
		"message": "Mental health self-assessment service",
	})
}
