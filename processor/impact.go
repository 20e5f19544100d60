package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"go-idro/db"
	"go-idro/logger"
	"go-idro/metrics"
	"go-idro/mlmodel"
	"go-idro/rules"
	"go-idro/types"
)

// ErrMissionNotFound is the only failure that aborts a whole analysis.
var ErrMissionNotFound = errors.New("mission not found")

const (
	defaultWorkers        = 8
	defaultPersistTimeout = 10 * time.Second
	defaultUrgencyLabel   = "24 Hours"
)

type MissionStore interface {
	GetMissionByID(ctx context.Context, id string) (types.Mission, error)
}

type CampStore interface {
	GetCampsByMissionID(ctx context.Context, missionID string) ([]types.Camp, error)
}

type PredictionStore interface {
	SavePrediction(ctx context.Context, p types.Prediction) error
}

type Predictor interface {
	Predict(ctx context.Context, in mlmodel.PredictionRequest) (*mlmodel.PredictionResponse, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (float64, float64, error)
}

// RuleSet holds the deterministic evaluators used for every camp.
type RuleSet struct {
	Requirements func(types.Camp) rules.RequirementSet
	UrgencyHours func(label string) int
	RiskScore    func(severity string, supplyHours, population int) int
}

func DefaultRules() RuleSet {
	return RuleSet{
		Requirements: rules.CalculateRequirements,
		UrgencyHours: rules.UrgencyToHours,
		RiskScore:    rules.RiskScore,
	}
}

type Deps struct {
	Missions    MissionStore
	Camps       CampStore
	Predictions PredictionStore
	Predictor   Predictor // nil disables ML enrichment
	Geocoder    Geocoder  // optional
	Rules       RuleSet
	Metrics     *metrics.Metrics
	Log         *logger.Logger

	Workers         int
	AnalysisTimeout time.Duration // 0 means no mission-wide deadline
	PersistTimeout  time.Duration

	Now   func() time.Time
	NewID func() string
}

type Analyzer struct {
	missions    MissionStore
	camps       CampStore
	predictions PredictionStore
	predictor   Predictor
	geocoder    Geocoder
	rules       RuleSet
	metrics     *metrics.Metrics
	log         *logger.Logger

	workers         int
	analysisTimeout time.Duration
	persistTimeout  time.Duration

	now   func() time.Time
	newID func() string
}

func NewAnalyzer(d Deps) *Analyzer {
	a := &Analyzer{
		missions:        d.Missions,
		camps:           d.Camps,
		predictions:     d.Predictions,
		predictor:       d.Predictor,
		geocoder:        d.Geocoder,
		rules:           d.Rules,
		metrics:         d.Metrics,
		log:             d.Log,
		workers:         d.Workers,
		analysisTimeout: d.AnalysisTimeout,
		persistTimeout:  d.PersistTimeout,
		now:             d.Now,
		newID:           d.NewID,
	}
	defaults := DefaultRules()
	if a.rules.Requirements == nil {
		a.rules.Requirements = defaults.Requirements
	}
	if a.rules.UrgencyHours == nil {
		a.rules.UrgencyHours = defaults.UrgencyHours
	}
	if a.rules.RiskScore == nil {
		a.rules.RiskScore = defaults.RiskScore
	}
	if a.log == nil {
		a.log = logger.NewNop()
	}
	if a.workers <= 0 {
		a.workers = defaultWorkers
	}
	if a.persistTimeout <= 0 {
		a.persistTimeout = defaultPersistTimeout
	}
	if a.now == nil {
		a.now = func() time.Time { return time.Now().UTC() }
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	return a
}

// analysisRun is the read-only context shared by every camp task of one invocation.
type analysisRun struct {
	id       string
	mission  types.Mission
	fallback *coordinates
}

// AnalyzeMission loads the mission and its camps, analyzes every camp concurrently and
// returns the aggregated report. Only a missing mission (ErrMissionNotFound) or a failure to
// load the mission's data aborts the call; per-camp problems degrade that camp alone.
func (a *Analyzer) AnalyzeMission(ctx context.Context, missionID string) (*types.ImpactAnalysisReport, error) {
	start := time.Now()
	if a.analysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.analysisTimeout)
		defer cancel()
	}

	report, err := a.analyze(ctx, missionID)
	switch {
	case errors.Is(err, ErrMissionNotFound):
		a.metrics.ObserveAnalysis("not_found", time.Since(start))
	case err != nil:
		a.metrics.ObserveAnalysis("error", time.Since(start))
	default:
		a.metrics.ObserveAnalysis("ok", time.Since(start))
	}
	return report, err
}

func (a *Analyzer) analyze(ctx context.Context, missionID string) (*types.ImpactAnalysisReport, error) {
	log := a.log.With("mission_id", missionID)
	log.Info("Starting impact analysis")

	mission, err := a.missions.GetMissionByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMissionNotFound, missionID)
		}
		return nil, fmt.Errorf("load mission %s: %w", missionID, err)
	}
	if mission.ID == "" {
		mission.ID = missionID
	}

	camps, err := a.camps.GetCampsByMissionID(ctx, mission.ID)
	if err != nil {
		return nil, fmt.Errorf("load camps for mission %s: %w", mission.ID, err)
	}

	run := analysisRun{
		id:       a.newID(),
		mission:  mission,
		fallback: a.fallbackCoordinates(ctx, mission, camps),
	}
	log = log.With("run_id", run.id)
	log.Info("Mission loaded", "disaster_type", mission.DisasterType, "severity", mission.SeverityLabel, "camps", len(camps))

	report := &types.ImpactAnalysisReport{
		MissionID:        mission.ID,
		RunID:            run.id,
		DisasterType:     orDefault(mission.DisasterType, "Unknown"),
		Severity:         orDefault(mission.SeverityLabel, "Unknown"),
		GeneratedAt:      a.now(),
		CampAnalysisList: make([]types.CampAnalysisResult, 0, len(camps)),
	}

	resultsChan := make(chan types.CampAnalysisResult, len(camps))
	var g errgroup.Group
	g.SetLimit(a.workers)
	for _, camp := range camps {
		camp := camp
		g.Go(func() error {
			if res, ok := a.processCamp(ctx, run, camp); ok {
				resultsChan <- res
			}
			return nil
		})
	}
	_ = g.Wait()
	close(resultsChan)

	for res := range resultsChan {
		report.CampAnalysisList = append(report.CampAnalysisList, res)
		report.Totals.Add(res)
	}

	log.Info("Impact analysis complete", "camps", len(camps), "reported", len(report.CampAnalysisList))
	return report, nil
}

// processCamp never lets a failure escape: a panic or invalid camp drops the camp.
func (a *Analyzer) processCamp(ctx context.Context, run analysisRun, camp types.Camp) (res types.CampAnalysisResult, ok bool) {
	log := a.log.With("mission_id", run.mission.ID, "camp_id", camp.ID)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Camp analysis failed, dropping camp from report", "panic", r)
			a.metrics.CampFailed()
			res, ok = types.CampAnalysisResult{}, false
		}
	}()

	if strings.TrimSpace(camp.ID) == "" {
		log.Error("Camp analysis failed, dropping camp from report", "error", "camp has no id")
		a.metrics.CampFailed()
		return types.CampAnalysisResult{}, false
	}

	res = a.evaluateCamp(run.mission, camp)
	a.enrich(ctx, run, camp, &res, log)
	a.persist(ctx, run, res, log)

	a.metrics.CampAnalyzed(string(res.PredictionSource))
	return res, true
}

// evaluateCamp builds the reported quantities. Food, water, beds, medical kits and
// ambulances use the per-camp formulas; volunteers and toilets come from the rule engine.
func (a *Analyzer) evaluateCamp(mission types.Mission, camp types.Camp) types.CampAnalysisResult {
	urgency := resolveUrgency(camp, mission)
	camp.Severity = resolveSeverity(camp, mission)

	requirements := a.rules.Requirements(camp)
	population := camp.PopulationOrZero()
	injured := camp.InjuredOrZero()
	score := a.rules.RiskScore(camp.Severity, a.rules.UrgencyHours(urgency), population)

	res := types.CampAnalysisResult{
		CampID:       camp.ID,
		CampName:     camp.Name,
		Population:   population,
		InjuredCount: injured,

		FoodPackets: population * rules.FoodPacketsPerPerson,
		WaterLiters: population * rules.WaterLitersPerPerson,
		Beds:        injured,
		MedicalKits: rules.CeilDiv(injured, 2),
		Ambulances:  rules.CeilDiv(injured, 4),
		Volunteers:  requirements.VolunteersRequired,
		Toilets:     requirements.ToiletsRequired,

		RiskScore:        score,
		RiskLevel:        rules.RiskLevel(score),
		Urgency:          urgency,
		PredictionSource: types.SourceRuleEngine,
	}
	res.Explanations = explain(res, requirements)
	return res
}

// enrich consults the prediction service. Its quantities are advisory and never
// replace the rule-derived ones; success only changes the source label and risk metadata.
func (a *Analyzer) enrich(ctx context.Context, run analysisRun, camp types.Camp, res *types.CampAnalysisResult, log *logger.Logger) {
	if a.predictor == nil {
		return
	}

	resp, err := a.predictor.Predict(ctx, buildPredictionRequest(run.mission, camp, res.Urgency, run.fallback))
	if err != nil {
		log.Warn("ML fallback to rule engine", "error", err)
		return
	}
	if resp == nil || resp.Requirements.IsEmpty() {
		log.Warn("ML response had no requirements, keeping rule engine source")
		return
	}

	res.PredictionSource = types.SourceHybridAI
	res.MLRiskScore = resp.RiskScore
}

// persist writes the audit row on a context detached from the caller so a cancelled
// request or expired mission deadline still leaves a record for every reported camp.
func (a *Analyzer) persist(ctx context.Context, run analysisRun, res types.CampAnalysisResult, log *logger.Logger) {
	if a.predictions == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.persistTimeout)
	defer cancel()

	record := res.Prediction(a.newID(), run.id, run.mission.ID, a.now())
	if err := a.predictions.SavePrediction(pctx, record); err != nil {
		log.Error("Failed to save prediction", "error", err)
		a.metrics.PersistFailed()
	}
}

func resolveUrgency(camp types.Camp, mission types.Mission) string {
	if v := strings.TrimSpace(camp.Urgency); v != "" {
		return v
	}
	if v := strings.TrimSpace(mission.UrgencyLabel); v != "" {
		return v
	}
	return defaultUrgencyLabel
}

func resolveSeverity(camp types.Camp, mission types.Mission) string {
	if v := strings.TrimSpace(camp.Severity); v != "" {
		return v
	}
	return strings.TrimSpace(mission.SeverityLabel)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
