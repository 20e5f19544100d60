package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-idro/logger"
	"go-idro/types"
)

type ReportSummarizer interface {
	Summarize(ctx context.Context, report *types.ImpactAnalysisReport) (string, error)
}

// BriefHandler runs an analysis and asks the language model for a short situation brief.
// A nil summarizer means OPENAI_API_KEY was not configured.
func BriefHandler(c *gin.Context, analyzer MissionAnalyzer, summarizer ReportSummarizer, log *logger.Logger) {
	missionID, ok := pathID(c, "missionId")
	if !ok {
		return
	}
	if summarizer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Summarization is not configured"})
		return
	}

	report, err := analyzer.AnalyzeMission(c.Request.Context(), missionID)
	if err != nil {
		writeAnalysisError(c, log, missionID, err)
		return
	}

	brief, err := summarizer.Summarize(c.Request.Context(), report)
	if err != nil {
		log.Error("Failed to summarize impact analysis", "mission_id", missionID, "run_id", report.RunID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate brief"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"missionId":   report.MissionID,
		"runId":       report.RunID,
		"generatedAt": report.GeneratedAt,
		"brief":       brief,
		"totals":      report.Totals,
	})
}
