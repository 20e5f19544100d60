package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-idro/logger"
	"go-idro/processor"
	"go-idro/types"
)

type MissionAnalyzer interface {
	AnalyzeMission(ctx context.Context, missionID string) (*types.ImpactAnalysisReport, error)
}

// AnalyzeMissionHandler runs a fresh impact analysis. Every call persists a new set of predictions.
func AnalyzeMissionHandler(c *gin.Context, analyzer MissionAnalyzer, log *logger.Logger) {
	missionID, ok := pathID(c, "missionId")
	if !ok {
		return
	}

	report, err := analyzer.AnalyzeMission(c.Request.Context(), missionID)
	if err != nil {
		writeAnalysisError(c, log, missionID, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func writeAnalysisError(c *gin.Context, log *logger.Logger, missionID string, err error) {
	if errors.Is(err, processor.ErrMissionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Mission not found",
			"missionId": missionID,
		})
		return
	}

	log.Error("Impact analysis failed", "mission_id", missionID, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to analyze mission",
		"message": err.Error(),
	})
}

func pathID(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return "", false
	}
	return id, true
}
