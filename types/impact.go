package types

// MissionImpact is the mission-wide estimate built from the alert's own affected and injured
// counts, before any camp exists. It is computed on request and never stored.
type MissionImpact struct {
	MissionID     string `json:"missionId"`
	DisasterType  string `json:"disasterType"`
	Location      string `json:"location"`
	AffectedCount int    `json:"affectedCount"`
	InjuredCount  int    `json:"injuredCount"`

	FoodPerDay       int `json:"foodPerDay"`
	WaterPerDay      int `json:"waterPerDay"`
	MedicalTeams     int `json:"medicalTeams"`
	Ambulances       int `json:"ambulances"`
	Volunteers       int `json:"volunteers"`
	ShelterShortfall int `json:"shelterShortfall"`
	RescueBoats      int `json:"rescueBoats"`
}
