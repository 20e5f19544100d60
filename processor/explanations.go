package processor

import (
	"fmt"
	"strings"

	"go-idro/rules"
	"go-idro/types"
)

// explain renders the human-readable lines attached to a camp result, in a fixed order.
func explain(res types.CampAnalysisResult, requirements rules.RequirementSet) []string {
	lines := []string{fmt.Sprintf("%d people require daily food and water support", res.Population)}

	if res.InjuredCount > 0 {
		line := fmt.Sprintf("%d injured require beds", res.InjuredCount)
		if requirements.MedicalKitsRequired > 0 {
			line += " and medical kits"
		}
		lines = append(lines, line)
	}

	lines = append(lines, "Urgency level: "+strings.ToUpper(res.Urgency))

	if res.Ambulances > 0 {
		lines = append(lines, "Ambulance support required for injured patients")
	}
	return lines
}
