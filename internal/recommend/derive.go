package recommend

import (
	"fmt"
	"math"

	"github.com/Cornjebus/junie/internal/types"
)

// fitScore scales the total weighted score onto the 1-5 star scale.
func fitScore(total float64) int {
	stars := int(math.Round(total * 5))
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}

func difficultyOrRisk(tmpl *types.PathTemplate) string {
	if tmpl.Requirements != nil && tmpl.Requirements.RiskLevel != "" {
		return string(tmpl.Requirements.RiskLevel)
	}
	return string(types.RiskMedium)
}

func timeToIncome(tmpl *types.PathTemplate) string {
	if tmpl.Outcomes != nil && tmpl.Outcomes.AvgTimeToFirstClientWeeks != nil {
		weeks := *tmpl.Outcomes.AvgTimeToFirstClientWeeks
		if weeks <= 1 {
			return "about a week"
		}
		return fmt.Sprintf("about %.0f weeks", weeks)
	}
	return "varies"
}

func startupCost(tmpl *types.PathTemplate) string {
	if tmpl.Requirements == nil || len(tmpl.Requirements.StartupCostRangeUSD) != 2 {
		return "not specified"
	}
	rng := tmpl.Requirements.StartupCostRangeUSD
	return fmt.Sprintf("$%.0f-$%.0f", rng[0], rng[1])
}

// firstWin surfaces the first task of the starter plan as the quickest
// concrete step.
func firstWin(tmpl *types.PathTemplate) string {
	if tmpl.PlanTemplate != nil {
		for _, week := range tmpl.PlanTemplate.Weeks {
			if len(week.Tasks) > 0 {
				return week.Tasks[0]
			}
		}
	}
	return fmt.Sprintf("Spend one hour researching %s this week", tmpl.Title)
}

// keySteps collapses the starter plan into one headline step per week.
func keySteps(tmpl *types.PathTemplate) []string {
	if tmpl.PlanTemplate == nil || len(tmpl.PlanTemplate.Weeks) == 0 {
		return []string{
			fmt.Sprintf("Research what %s involves day to day", tmpl.Title),
			"Talk to someone already doing it",
			"Commit to a small first project",
		}
	}

	steps := make([]string, 0, len(tmpl.PlanTemplate.Weeks))
	for _, week := range tmpl.PlanTemplate.Weeks {
		if len(week.Tasks) > 0 {
			steps = append(steps, week.Tasks[0])
		}
	}
	return steps
}
