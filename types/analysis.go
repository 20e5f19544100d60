package types

import "time"

// CampAnalysisResult is built once per camp per run and never mutated afterwards.
type CampAnalysisResult struct {
	CampID       string `json:"campId"`
	CampName     string `json:"campName"`
	Population   int    `json:"population"`
	InjuredCount int    `json:"injuredCount"`

	FoodPackets int `json:"foodPackets"`
	WaterLiters int `json:"waterLiters"`
	Beds        int `json:"beds"`
	MedicalKits int `json:"medicalKits"`
	Volunteers  int `json:"volunteers"`
	Ambulances  int `json:"ambulances"`
	Toilets     int `json:"toilets"`

	RiskScore        int              `json:"riskScore"`
	RiskLevel        string           `json:"riskLevel"`
	MLRiskScore      *float64         `json:"mlRiskScore,omitempty"`
	Urgency          string           `json:"urgency"`
	PredictionSource PredictionSource `json:"predictionSource"`
	Explanations     []string         `json:"explanations"`
}

// Prediction mirrors the reported quantities into an audit record.
func (r CampAnalysisResult) Prediction(id, runID, missionID string, createdAt time.Time) Prediction {
	explanations := make([]string, len(r.Explanations))
	copy(explanations, r.Explanations)
	return Prediction{
		ID:               id,
		RunID:            runID,
		MissionID:        missionID,
		CampID:           r.CampID,
		FoodPerDay:       r.FoodPackets,
		WaterPerDay:      r.WaterLiters,
		MedicalKits:      r.MedicalKits,
		Beds:             r.Beds,
		Toilets:          r.Toilets,
		Ambulances:       r.Ambulances,
		Volunteers:       r.Volunteers,
		RiskScore:        r.RiskScore,
		RiskLevel:        r.RiskLevel,
		MLRiskScore:      r.MLRiskScore,
		Urgency:          r.Urgency,
		PredictionSource: r.PredictionSource,
		Explanations:     explanations,
		CreatedAt:        createdAt,
	}
}

type ResourceTotals struct {
	FoodPackets int `json:"foodPackets"`
	WaterLiters int `json:"waterLiters"`
	Beds        int `json:"beds"`
	MedicalKits int `json:"medicalKits"`
	Volunteers  int `json:"volunteers"`
	Ambulances  int `json:"ambulances"`
	Toilets     int `json:"toilets"`
}

func (t *ResourceTotals) Add(r CampAnalysisResult) {
	t.FoodPackets += r.FoodPackets
	t.WaterLiters += r.WaterLiters
	t.Beds += r.Beds
	t.MedicalKits += r.MedicalKits
	t.Volunteers += r.Volunteers
	t.Ambulances += r.Ambulances
	t.Toilets += r.Toilets
}

// ImpactAnalysisReport is transient; only its per-camp Predictions are persisted.
// CampAnalysisList order is not guaranteed to match camp input order.
type ImpactAnalysisReport struct {
	MissionID        string               `json:"missionId"`
	RunID            string               `json:"runId"`
	DisasterType     string               `json:"disasterType"`
	Severity         string               `json:"severity"`
	GeneratedAt      time.Time            `json:"generatedAt"`
	CampAnalysisList []CampAnalysisResult `json:"campAnalysisList"`
	Totals           ResourceTotals       `json:"totals"`
}
