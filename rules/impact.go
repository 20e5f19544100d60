package rules

import (
	"strings"

	"go-idro/types"
)

const (
	InjuredPerMedicalTeam     = 40
	InjuredPerAmbulance       = 25
	PeoplePerMissionVolunteer = 30
	PeoplePerRescueBoat       = 200

	// share of affected people assumed to have lost their homes
	shelterShortfallPercent = 40
)

// MissionImpact estimates mission-wide needs from the alert's affected and injured counts.
// Food and water use the same per-person rates as the camp analysis.
func MissionImpact(m types.Mission) types.MissionImpact {
	people := max(m.AffectedCount, 0)
	injured := max(m.InjuredCount, 0)

	return types.MissionImpact{
		MissionID:     m.ID,
		DisasterType:  m.DisasterType,
		Location:      m.Location,
		AffectedCount: people,
		InjuredCount:  injured,

		FoodPerDay:       people * FoodPacketsPerPerson,
		WaterPerDay:      people * WaterLitersPerPerson,
		MedicalTeams:     CeilDiv(injured, InjuredPerMedicalTeam),
		Ambulances:       CeilDiv(injured, InjuredPerAmbulance),
		Volunteers:       CeilDiv(people, PeoplePerMissionVolunteer),
		ShelterShortfall: people * shelterShortfallPercent / 100,
		RescueBoats:      rescueBoats(m.DisasterType, people),
	}
}

// rescueBoats is non-zero only for water disasters.
func rescueBoats(disasterType string, people int) int {
	switch strings.ToUpper(strings.TrimSpace(disasterType)) {
	case "FLOOD", "CYCLONE":
		return CeilDiv(people, PeoplePerRescueBoat)
	default:
		return 0
	}
}
