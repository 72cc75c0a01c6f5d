package types

// Scores holds the per-candidate sub-scores and their weighted combination.
// Every component lies in [0, 1].
type Scores struct {
	VectorSimilarity float64 `json:"vector_similarity"`
	SkillsMatch      float64 `json:"skills_match"`
	ValuesAlignment  float64 `json:"values_alignment"`
	Feasibility      float64 `json:"feasibility"`
	Total            float64 `json:"total"`
}

// ScoredCandidate pairs a retrieved template with its scores for one request.
type ScoredCandidate struct {
	Template *PathTemplate `json:"template"`
	Scores   Scores        `json:"scores"`
}

// Source tags where a recommendation list came from.
type Source string

// Recommendation sources. Callers use the tag to distinguish personalized
// ranked results from the generic fallback catalog.
const (
	SourceDatabase Source = "database"
	SourceMock     Source = "mock"
)

// Recommendation is one entry of the final ranked output.
type Recommendation struct {
	TemplateID       string   `json:"template_id"`
	Title            string   `json:"title"`
	WhyYou           []string `json:"why_you"` // always exactly 3 entries
	FirstWin         string   `json:"first_win"`
	DifficultyOrRisk string   `json:"difficulty_or_risk"`
	TimeToIncome     string   `json:"time_to_income"`
	StartupCost      string   `json:"startup_cost"`
	KeySteps         []string `json:"key_steps"`
	FitScore         int      `json:"fit_score"` // 1-5 stars
}

// Diagnostics reports request-level observations alongside the result.
type Diagnostics struct {
	CandidatesRetrieved int   `json:"candidates_retrieved"`
	ElapsedMs           int64 `json:"elapsed_ms"`
}

// Result is the engine's complete answer to one recommendation request.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Source          Source           `json:"source"`
	Diagnostics     Diagnostics      `json:"diagnostics"`
}
