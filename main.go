package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go-idro/config"
	"go-idro/cronjobs"
	"go-idro/db"
	"go-idro/geocode"
	"go-idro/handlers"
	"go-idro/logger"
	"go-idro/metrics"
	"go-idro/mlmodel"
	"go-idro/processor"
	"go-idro/routes"
	"go-idro/summarization"
)

func main() {
	cfg := config.Load()

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	if cfg.LogMode == "production" || cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Init firestore
	firestoreClient, err := db.NewFirestore(ctx, cfg.FirebaseCredentials)
	if err != nil {
		lg.Fatal("Failed to initialize Firestore", "error", err)
	}
	store := db.NewStore(firestoreClient)
	defer store.Close()

	mlClient := mlmodel.NewClient(cfg.MLBaseURL, cfg.MLConnectTimeout, cfg.MLReadTimeout, m)
	lg.Info("ML prediction service configured", "url", mlClient.URL())

	deps := processor.Deps{
		Missions:        store,
		Camps:           store,
		Predictions:     store,
		Predictor:       mlClient,
		Metrics:         m,
		Log:             lg,
		Workers:         cfg.AnalysisWorkers,
		AnalysisTimeout: cfg.AnalysisTimeout,
		PersistTimeout:  cfg.PersistTimeout,
	}
	if cfg.MapsAPIKey != "" {
		resolver, err := geocode.NewResolver(cfg.MapsAPIKey)
		if err != nil {
			lg.Warn("Geocoding disabled", "error", err)
		} else {
			deps.Geocoder = resolver
		}
	}
	analyzer := processor.NewAnalyzer(deps)

	var summarizer handlers.ReportSummarizer
	if cfg.OpenAIAPIKey != "" {
		summarizer = summarization.NewSummarizer(cfg.OpenAIAPIKey)
		lg.Info("OPENAI_API_KEY loaded, briefs enabled")
	}

	// Initialize cron jobs
	scheduler, err := cronjobs.InitCronJobs(
		cronjobs.Schedules{Reanalysis: cfg.ReanalysisSchedule, MLHealth: cfg.MLHealthSchedule},
		&cronjobs.Jobs{Missions: store, Analyzer: analyzer, ML: mlClient, Log: lg},
	)
	if err != nil {
		lg.Fatal("Failed to start cron jobs", "error", err)
	}
	defer func() { <-scheduler.Stop().Done() }()

	r := routes.SetupRouter(routes.Deps{
		Analyzer:   analyzer,
		Missions:   store,
		History:    store,
		Summarizer: summarizer,
		ML:         mlClient,
		Gatherer:   reg,
		Log:        lg,
		ClientURL:  cfg.ClientURL,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	lg.Info("Server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("Server error", "error", err)
	}
}
