package model

// Criterion names used as keys in the per-criterion score breakdown
const (
	CriterionBudget      = "budget"
	CriterionEnvironment = "environment"
	CriterionFeatures    = "features"
	CriterionCapacity    = "capacity"
	CriterionLocation    = "location"
)

// SubScore is one component of a match score together with the weight it
// contributed under
type SubScore struct {
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
}

// MatchResult is the outcome of scoring one property against search criteria.
// Ephemeral: built per request, discarded after rendering.
type MatchResult struct {
	Property  Property            `json:"property"`
	Score     float64             `json:"score"`
	SubScores map[string]SubScore `json:"score_breakdown"`
	Reasons   []string            `json:"reasons"`
}
