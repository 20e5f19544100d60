package types

import "time"

type PredictionSource string

const (
	SourceRuleEngine PredictionSource = "RuleEngine"
	SourceHybridAI   PredictionSource = "HybridAI"
)

// Prediction is the append-only audit row written for every camp of every analysis run.
// Its quantities are copied from the CampAnalysisResult returned to the caller.
type Prediction struct {
	ID        string `firestore:"-" json:"id"`
	RunID     string `firestore:"runId" json:"runId"`
	MissionID string `firestore:"missionId" json:"missionId"`
	CampID    string `firestore:"campId" json:"campId"`

	FoodPerDay  int `firestore:"foodPerDay" json:"foodPerDay"`
	WaterPerDay int `firestore:"waterPerDay" json:"waterPerDay"`
	MedicalKits int `firestore:"medicalKits" json:"medicalKits"`
	Beds        int `firestore:"beds" json:"beds"`
	Toilets     int `firestore:"toilets" json:"toilets"`
	Ambulances  int `firestore:"ambulances" json:"ambulances"`
	Volunteers  int `firestore:"volunteers" json:"volunteers"`

	RiskScore        int              `firestore:"riskScore" json:"riskScore"`
	RiskLevel        string           `firestore:"riskLevel" json:"riskLevel"`
	MLRiskScore      *float64         `firestore:"mlRiskScore,omitempty" json:"mlRiskScore,omitempty"`
	Urgency          string           `firestore:"urgency" json:"urgency"`
	PredictionSource PredictionSource `firestore:"predictionSource" json:"predictionSource"`
	Explanations     []string         `firestore:"explanations" json:"explanations"`
	CreatedAt        time.Time        `firestore:"createdAt" json:"createdAt"`
}
