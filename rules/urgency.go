package rules

import "strings"

const DefaultUrgencyHours = 12

// UrgencyToHours maps a qualitative urgency label to hours until supplies run out.
func UrgencyToHours(label string) int {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "immediate", "6 hours":
		return 6
	case "12 hours":
		return 12
	case "24 hours":
		return 24
	default:
		return DefaultUrgencyHours
	}
}
