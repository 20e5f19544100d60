package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-idro/db"
	"go-idro/logger"
	"go-idro/rules"
)

// MissionImpactHandler returns the mission-wide estimate derived from the alert's own counts.
// It reads the mission only and writes nothing.
func MissionImpactHandler(c *gin.Context, missions MissionLookup, log *logger.Logger) {
	missionID, ok := pathID(c, "missionId")
	if !ok {
		return
	}

	mission, err := missions.GetMissionByID(c.Request.Context(), missionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found", "missionId": missionID})
			return
		}
		log.Error("Failed to load mission", "mission_id", missionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to estimate mission impact",
			"message": err.Error(),
		})
		return
	}
	if mission.ID == "" {
		mission.ID = missionID
	}

	c.JSON(http.StatusOK, rules.MissionImpact(mission))
}
