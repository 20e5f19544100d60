package cronjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"go-idro/logger"
	"go-idro/types"
)

const probeTimeout = 5 * time.Second

type ActiveMissionLister interface {
	ListActiveMissions(ctx context.Context) ([]types.Mission, error)
}

type MissionAnalyzer interface {
	AnalyzeMission(ctx context.Context, missionID string) (*types.ImpactAnalysisReport, error)
}

type HealthProber interface {
	Healthy(ctx context.Context) bool
}

type Schedules struct {
	Reanalysis string // empty disables periodic re-analysis
	MLHealth   string // empty disables the health probe
}

type Jobs struct {
	Missions ActiveMissionLister
	Analyzer MissionAnalyzer
	ML       HealthProber
	Log      *logger.Logger
}

// InitCronJobs registers the enabled jobs and starts the scheduler. Callers stop it on shutdown.
func InitCronJobs(s Schedules, jobs *Jobs) (*cron.Cron, error) {
	jobs.Log.Info("Starting cron jobs", "reanalysis", s.Reanalysis, "ml_health", s.MLHealth)
	cl := cronLogger{log: jobs.Log}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	if s.Reanalysis != "" {
		if _, err := c.AddFunc(s.Reanalysis, func() {
			jobs.ReanalyzeActiveMissions(context.Background())
		}); err != nil {
			return nil, fmt.Errorf("schedule mission re-analysis %q: %w", s.Reanalysis, err)
		}
	}

	if s.MLHealth != "" {
		if _, err := c.AddFunc(s.MLHealth, func() {
			jobs.ProbeML(context.Background())
		}); err != nil {
			return nil, fmt.Errorf("schedule ML health probe %q: %w", s.MLHealth, err)
		}
	}

	c.Start()
	return c, nil
}

// ReanalyzeActiveMissions runs a fresh analysis for every mission still being worked,
// one mission at a time. It returns how many analyses completed.
func (j *Jobs) ReanalyzeActiveMissions(ctx context.Context) int {
	j.Log.Info("CronJob: mission re-analysis running")

	missions, err := j.Missions.ListActiveMissions(ctx)
	if err != nil {
		j.Log.Error("Failed to list active missions", "error", err)
		return 0
	}

	done := 0
	for _, m := range missions {
		if !m.IsActive() {
			continue
		}
		report, err := j.Analyzer.AnalyzeMission(ctx, m.ID)
		if err != nil {
			j.Log.Warn("Scheduled analysis failed", "mission_id", m.ID, "error", err)
			continue
		}
		done++
		j.Log.Info("Scheduled analysis complete", "mission_id", m.ID, "run_id", report.RunID, "camps", len(report.CampAnalysisList))
	}
	return done
}

// cronLogger routes scheduler events, recovered panics and skipped runs into zap.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

func (j *Jobs) ProbeML(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	ok := j.ML.Healthy(ctx)
	if !ok {
		j.Log.Warn("ML prediction service is not reachable")
	}
	return ok
}
