package rules

import "strings"

const (
	RiskLevelCritical = "CRITICAL"
	RiskLevelHigh     = "HIGH"
	RiskLevelModerate = "MODERATE"
	RiskLevelLow      = "LOW"
)

// RiskScore sums the severity, urgency and population axes. The result lies in [25,110]
// and is advisory only.
func RiskScore(severity string, supplyHours int, population int) int {
	return severityScore(severity) + urgencyScore(supplyHours) + populationScore(population)
}

func severityScore(severity string) int {
	switch strings.ToUpper(strings.TrimSpace(severity)) {
	case "CRITICAL":
		return 40
	case "HIGH":
		return 30
	case "MODERATE":
		return 20
	default:
		return 10
	}
}

func urgencyScore(hours int) int {
	switch {
	case hours <= 6:
		return 40
	case hours <= 12:
		return 20
	case hours <= 24:
		return 10
	default:
		return 5
	}
}

func populationScore(population int) int {
	switch {
	case population <= 500:
		return 10
	case population <= 1000:
		return 20
	default:
		return 30
	}
}

// RiskLevel bands a rule risk score for display.
func RiskLevel(score int) string {
	switch {
	case score >= 90:
		return RiskLevelCritical
	case score >= 70:
		return RiskLevelHigh
	case score >= 50:
		return RiskLevelModerate
	default:
		return RiskLevelLow
	}
}
