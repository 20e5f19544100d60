package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
	URL() string
}

// MLHealthHandler reports whether the prediction service answers its health probe.
func MLHealthHandler(c *gin.Context, checker HealthChecker) {
	c.JSON(http.StatusOK, gin.H{
		"available": checker.Healthy(c.Request.Context()),
		"url":       checker.URL(),
	})
}
