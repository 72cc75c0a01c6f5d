package types

import "github.com/google/uuid"

// PathCategory classifies a path template.
type PathCategory string

// Path template categories.
const (
	CategoryBusiness PathCategory = "business"
	CategoryCareer   PathCategory = "career"
)

// RiskLevel describes the risk of pursuing a path.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TypicalFit is the matching surface of a template against a user profile.
type TypicalFit struct {
	Sparks         []string `json:"sparks"`
	Values         []string `json:"values"`
	SkillsNeeded   []string `json:"skills_needed"`
	TimeCommitment string   `json:"time_commitment,omitempty"`
}

// Requirements holds the practical constraints of a path. Any field may be
// absent; scoring treats missing data as neutral.
type Requirements struct {
	MinHours            *float64  `json:"min_hours,omitempty"`
	StartupCostRangeUSD []float64 `json:"startup_cost_range_usd,omitempty"` // [min, max]
	RiskLevel           RiskLevel `json:"risk_level,omitempty"`
}

// AverageStartupCost returns the midpoint of the startup cost range.
// The second return is false when no cost range is recorded.
func (r *Requirements) AverageStartupCost() (float64, bool) {
	if r == nil || len(r.StartupCostRangeUSD) != 2 {
		return 0, false
	}
	return (r.StartupCostRangeUSD[0] + r.StartupCostRangeUSD[1]) / 2, true
}

// Outcomes holds observed outcome statistics for a path.
type Outcomes struct {
	AvgTimeToFirstClientWeeks *float64 `json:"avg_time_to_first_client_weeks,omitempty"`
	AvgIncome                 *float64 `json:"avg_income,omitempty"`
	SuccessRate               *float64 `json:"success_rate,omitempty"`
}

// PlanWeek is one week of a path's starter plan.
type PlanWeek struct {
	Week  int      `json:"week"`
	Tasks []string `json:"tasks"`
}

// PlanTemplate is the week-by-week starter plan attached to a template.
type PlanTemplate struct {
	Weeks []PlanWeek `json:"weeks"`
}

// PathTemplate is a curated career/business opportunity with matching metadata
// and a precomputed embedding. Templates are seeded out-of-band and are
// immutable for the duration of a recommendation request.
type PathTemplate struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Category     PathCategory  `json:"category"`
	Subcategory  string        `json:"subcategory,omitempty"`
	Description  string        `json:"description,omitempty"`
	TypicalFit   TypicalFit    `json:"typical_fit"`
	Requirements *Requirements `json:"requirements,omitempty"`
	Outcomes     *Outcomes     `json:"outcomes,omitempty"`
	PlanTemplate *PlanTemplate `json:"plan_template,omitempty"`
	Embedding    []float32     `json:"embedding,omitempty"`
	IsActive     bool          `json:"is_active"`
}
