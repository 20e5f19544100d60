package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-idro/handlers"
	"go-idro/logger"
)

type Deps struct {
	Analyzer   handlers.MissionAnalyzer
	Missions   handlers.MissionLookup
	History    handlers.PredictionHistory
	Summarizer handlers.ReportSummarizer // nil disables the brief endpoint
	ML         handlers.HealthChecker
	Gatherer   prometheus.Gatherer
	Log        *logger.Logger
	ClientURL  string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(d.Log), CORS(d.ClientURL))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hello, welcome to IDRO impact analysis!",
		})
	})

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		api.GET("/impact-analysis/:missionId", func(c *gin.Context) {
			handlers.AnalyzeMissionHandler(c, d.Analyzer, d.Log)
		})
		api.GET("/impact-analysis/:missionId/predictions", func(c *gin.Context) {
			handlers.MissionPredictionsHandler(c, d.Missions, d.History, d.Log)
		})
		api.GET("/impact-analysis/:missionId/brief", func(c *gin.Context) {
			handlers.BriefHandler(c, d.Analyzer, d.Summarizer, d.Log)
		})
		api.GET("/camps/:campId/predictions", func(c *gin.Context) {
			handlers.CampPredictionsHandler(c, d.History, d.Log)
		})
		api.GET("/analytics/impact/:missionId", func(c *gin.Context) {
			handlers.MissionImpactHandler(c, d.Missions, d.Log)
		})
		api.GET("/ml/health", func(c *gin.Context) {
			handlers.MLHealthHandler(c, d.ML)
		})
	}

	return r
}
