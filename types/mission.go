package types

import "strings"

// Mission is the alert a set of relief camps is coordinated under.
// Stored in the "alerts" collection; read-only during analysis.
type Mission struct {
	ID            string   `firestore:"-" json:"id"`
	DisasterType  string   `firestore:"type" json:"disasterType"`
	SeverityLabel string   `firestore:"magnitude" json:"severity"` // e.g. "CRITICAL"
	UrgencyLabel  string   `firestore:"urgency" json:"urgency"`    // e.g. "Immediate", "6 Hours"
	AffectedCount int      `firestore:"affectedCount" json:"affectedCount"`
	InjuredCount  int      `firestore:"injuredCount" json:"injuredCount"`
	Missing       string   `firestore:"missing" json:"missing"` // free text, parsed leniently
	Location      string   `firestore:"location" json:"location"`
	Latitude      *float64 `firestore:"latitude" json:"latitude,omitempty"`
	Longitude     *float64 `firestore:"longitude" json:"longitude,omitempty"`
	MissionStatus string   `firestore:"missionStatus" json:"missionStatus"`
}

// IsActive reports whether the mission is still being worked and should be re-analyzed.
// Intake writes OPEN; dispatch moves a mission to ASSIGNED. Comparison ignores case.
func (m Mission) IsActive() bool {
	switch strings.ToUpper(strings.TrimSpace(m.MissionStatus)) {
	case "OPEN", "ASSIGNED", "ACTIVE", "IN_PROGRESS", "DEPLOYED":
		return true
	default:
		return false
	}
}

// HasCoordinates is true when both latitude and longitude are set.
func (m Mission) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}
