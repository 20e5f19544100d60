package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-idro/db"
	"go-idro/logger"
	"go-idro/types"
)

type MissionLookup interface {
	GetMissionByID(ctx context.Context, id string) (types.Mission, error)
}

type PredictionHistory interface {
	ListPredictionsByMission(ctx context.Context, missionID string, source types.PredictionSource) ([]types.Prediction, error)
	ListPredictionsByCamp(ctx context.Context, campID string) ([]types.Prediction, error)
}

// MissionPredictionsHandler lists the stored prediction history of a mission, newest first.
// The optional ?source= filter accepts RuleEngine or HybridAI.
func MissionPredictionsHandler(c *gin.Context, missions MissionLookup, history PredictionHistory, log *logger.Logger) {
	missionID, ok := pathID(c, "missionId")
	if !ok {
		return
	}

	source := types.PredictionSource(c.Query("source"))
	switch source {
	case "", types.SourceRuleEngine, types.SourceHybridAI:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "source must be RuleEngine or HybridAI",
		})
		return
	}

	if _, err := missions.GetMissionByID(c.Request.Context(), missionID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found", "missionId": missionID})
			return
		}
		log.Error("Failed to load mission", "mission_id", missionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve predictions"})
		return
	}

	predictions, err := history.ListPredictionsByMission(c.Request.Context(), missionID, source)
	if err != nil {
		log.Error("Failed to list predictions", "mission_id", missionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve predictions"})
		return
	}

	if predictions == nil {
		predictions = []types.Prediction{}
	}
	c.JSON(http.StatusOK, predictions)
}

func CampPredictionsHandler(c *gin.Context, history PredictionHistory, log *logger.Logger) {
	campID, ok := pathID(c, "campId")
	if !ok {
		return
	}

	predictions, err := history.ListPredictionsByCamp(c.Request.Context(), campID)
	if err != nil {
		log.Error("Failed to list predictions", "camp_id", campID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve predictions"})
		return
	}

	if predictions == nil {
		predictions = []types.Prediction{}
	}
	c.JSON(http.StatusOK, predictions)
}
