package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-idro/types"
)

func TestMissionImpact(t *testing.T) {
	tests := []struct {
		name    string
		mission types.Mission
		want    types.MissionImpact
	}{
		{
			name:    "flood needs boats",
			mission: types.Mission{ID: "m1", DisasterType: "FLOOD", Location: "Kochi", AffectedCount: 1000, InjuredCount: 60},
			want: types.MissionImpact{
				MissionID: "m1", DisasterType: "FLOOD", Location: "Kochi", AffectedCount: 1000, InjuredCount: 60,
				FoodPerDay: 3000, WaterPerDay: 3000, MedicalTeams: 2, Ambulances: 3, Volunteers: 34,
				ShelterShortfall: 400, RescueBoats: 5,
			},
		},
		{
			name:    "cyclone in lower case",
			mission: types.Mission{ID: "m2", DisasterType: "cyclone", AffectedCount: 201},
			want: types.MissionImpact{
				MissionID: "m2", DisasterType: "cyclone", AffectedCount: 201,
				FoodPerDay: 603, WaterPerDay: 603, Volunteers: 7, ShelterShortfall: 80, RescueBoats: 2,
			},
		},
		{
			name:    "earthquake has no boats",
			mission: types.Mission{ID: "m3", DisasterType: "EARTHQUAKE", AffectedCount: 1000, InjuredCount: 25},
			want: types.MissionImpact{
				MissionID: "m3", DisasterType: "EARTHQUAKE", AffectedCount: 1000, InjuredCount: 25,
				FoodPerDay: 3000, WaterPerDay: 3000, MedicalTeams: 1, Ambulances: 1, Volunteers: 34,
				ShelterShortfall: 400,
			},
		},
		{
			name:    "negative counts are zero",
			mission: types.Mission{ID: "m4", DisasterType: "FIRE", AffectedCount: -5, InjuredCount: -1},
			want:    types.MissionImpact{MissionID: "m4", DisasterType: "FIRE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissionImpact(tt.mission))
		})
	}
}
