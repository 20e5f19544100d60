package rules

import (
	"strings"

	"go-idro/types"
)

const (
	FoodPacketsPerPerson = 3
	WaterLitersPerPerson = 3
	PeoplePerVolunteer   = 50
	PeoplePerToilet      = 20

	criticalInjuredThreshold = 50
)

// RequirementSet is the rule engine's view of what a camp needs per day.
type RequirementSet struct {
	FoodPacketsPerDay   int `json:"foodPacketsPerDay"`
	WaterLitersPerDay   int `json:"waterLitersPerDay"`
	BedsRequired        int `json:"bedsRequired"`
	MedicalKitsRequired int `json:"medicalKitsRequired"`
	AmbulancesRequired  int `json:"ambulancesRequired"`
	VolunteersRequired  int `json:"volunteersRequired"`
	ToiletsRequired     int `json:"toiletsRequired"`
}

// CalculateRequirements applies the deterministic resource formulas to a camp.
// Divisions round up; missing or negative counts are treated as zero.
func CalculateRequirements(camp types.Camp) RequirementSet {
	population := camp.PopulationOrZero()
	injured := camp.InjuredOrZero()

	medicalKits := 0
	if camp.MedicinesNeeded {
		medicalKits = injured
	}

	ambulances := 0
	if injured > 0 {
		ambulances = 1
	}
	if strings.EqualFold(strings.TrimSpace(camp.Severity), "CRITICAL") && injured > criticalInjuredThreshold {
		ambulances = 2
	}

	return RequirementSet{
		FoodPacketsPerDay:   population * FoodPacketsPerPerson,
		WaterLitersPerDay:   population * WaterLitersPerPerson,
		BedsRequired:        injured,
		MedicalKitsRequired: medicalKits,
		AmbulancesRequired:  ambulances,
		VolunteersRequired:  CeilDiv(population, PeoplePerVolunteer),
		ToiletsRequired:     CeilDiv(population, PeoplePerToilet),
	}
}

// CeilDiv divides and rounds up. Non-positive n yields 0.
func CeilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
