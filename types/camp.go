package types

// Camp is a relief shelter tied to a mission through AlertID.
type Camp struct {
	ID              string   `firestore:"-" json:"id"`
	AlertID         string   `firestore:"alertId" json:"alertId"`
	Name            string   `firestore:"name" json:"name"`
	Population      *int     `firestore:"population" json:"population,omitempty"` // nil is treated as 0
	InjuredCount    int      `firestore:"injuredCount" json:"injuredCount"`
	MedicinesNeeded bool     `firestore:"medicinesNeeded" json:"medicinesNeeded"`
	Severity        string   `firestore:"severity" json:"severity"`
	Urgency         string   `firestore:"urgency" json:"urgency"`
	Latitude        *float64 `firestore:"latitude" json:"latitude,omitempty"`
	Longitude       *float64 `firestore:"longitude" json:"longitude,omitempty"`
}

// PopulationOrZero never returns a negative count.
func (c Camp) PopulationOrZero() int {
	if c.Population == nil || *c.Population < 0 {
		return 0
	}
	return *c.Population
}

func (c Camp) InjuredOrZero() int {
	if c.InjuredCount < 0 {
		return 0
	}
	return c.InjuredCount
}

func (c Camp) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
