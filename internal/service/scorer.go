package service

import (
	"math"
	"strings"

	"summerhome/internal/config"
	"summerhome/internal/model"
)

// Match reason constants
const (
	ReasonBudgetFit        = "Price fits your budget"
	ReasonEnvironmentMatch = "Matches your preferred environment"
	ReasonFeatureMatch     = "Has the features you asked for"
	ReasonCapacityFit      = "Sleeps your whole group"
	ReasonLocationMatch    = "In your desired location"
)

// Partial credit granted when the property's environment is adjacent to the
// requested one (e.g. lake vs. mountain) rather than an exact match.
const adjacentEnvironmentCredit = 0.4

// Neutral score used when a property lacks the data to judge a criterion
const neutralScore = 0.5

// LocationResolver maps a location name to coordinates when the dataset
// knows them. A nil resolver limits location scoring to text matching.
type LocationResolver interface {
	CoordinatesFor(location string) *model.Coordinates
}

// Scorer computes match scores between a property and search criteria.
// Pure and deterministic: the same inputs always produce the same result.
type Scorer struct {
	cfg       config.ScoringConfig
	locations LocationResolver
}

// NewScorer creates a scorer with the given weights and tuning constants
func NewScorer(cfg config.ScoringConfig, locations LocationResolver) *Scorer {
	return &Scorer{cfg: cfg, locations: locations}
}

// Score evaluates one property against the criteria. All sub-scores are in
// [0,1]; the overall score is the weighted sum normalized by the total
// weight of the criteria that apply, so an omitted location filter does not
// drag every property down.
func (s *Scorer) Score(p *model.Property, c *model.SearchCriteria) model.MatchResult {
	subScores := make(map[string]model.SubScore, 5)

	add := func(name string, score, weight float64) {
		subScores[name] = model.SubScore{
			Score:         score,
			Weight:        weight,
			WeightedScore: score * weight,
		}
	}

	add(model.CriterionBudget, s.budgetScore(p.PricePerNight, c.MinBudget, c.MaxBudget), s.cfg.WeightBudget)
	add(model.CriterionEnvironment, s.environmentScore(p, c.Environment), s.cfg.WeightEnvironment)
	add(model.CriterionFeatures, s.featureScore(p, c.Features), s.cfg.WeightFeatures)
	add(model.CriterionCapacity, s.capacityScore(p.Bedrooms, c.GroupSize), s.cfg.WeightCapacity)
	if c.HasLocation() {
		add(model.CriterionLocation, s.locationScore(p, c.Location), s.cfg.WeightLocation)
	}

	var sum, totalWeight float64
	for _, ss := range subScores {
		sum += ss.WeightedScore
		totalWeight += ss.Weight
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = clamp01(sum / totalWeight)
	}

	return model.MatchResult{
		Property:  *p,
		Score:     overall,
		SubScores: subScores,
		Reasons:   s.reasons(subScores),
	}
}

// budgetScore is 1.0 inside [min,max] and decays linearly with the distance
// from the nearest bound, scaled by the range width, floored at 0.
func (s *Scorer) budgetScore(price, minBudget, maxBudget float64) float64 {
	if price >= minBudget && price <= maxBudget {
		return 1.0
	}

	width := maxBudget - minBudget
	if width <= 0 {
		// Degenerate single-point range: scale by the budget itself
		width = maxBudget
	}
	if width <= 0 {
		return 0.0
	}

	var dist float64
	if price < minBudget {
		dist = minBudget - price
	} else {
		dist = price - maxBudget
	}

	return clamp01(1.0 - dist/width)
}

// environmentScore compares the property's classified environment with the
// requested one: exact match scores 1.0, an adjacent environment gets fixed
// partial credit, anything else 0.
func (s *Scorer) environmentScore(p *model.Property, want model.Environment) float64 {
	got := ClassifyEnvironment(p)
	if got == model.EnvUnknown {
		return 0.0
	}
	if got == want {
		return 1.0
	}
	for _, adj := range environmentAdjacency[want] {
		if got == adj {
			return adjacentEnvironmentCredit
		}
	}
	return 0.0
}

// featureScore is the fraction of requested feature tags the property
// carries, or 1.0 when the search requested none.
func (s *Scorer) featureScore(p *model.Property, requested []string) float64 {
	if len(requested) == 0 {
		return 1.0
	}
	matched := 0
	for _, tag := range requested {
		if p.HasFeature(tag) {
			matched++
		}
	}
	return float64(matched) / float64(len(requested))
}

// capacityScore judges whether the property sleeps the group, deriving
// capacity from the bedroom count. Decays with the shortfall; neutral when
// the bedroom count is unknown.
func (s *Scorer) capacityScore(bedrooms *int, groupSize int) float64 {
	if bedrooms == nil {
		return neutralScore
	}
	capacity := *bedrooms * s.cfg.OccupancyPerBedroom
	if capacity >= groupSize {
		return 1.0
	}
	shortfall := float64(groupSize - capacity)
	return clamp01(1.0 - shortfall/float64(groupSize))
}

// locationScore is 1.0 on a case-insensitive substring match against the
// property location. When the text doesn't match but both locations resolve
// to coordinates, it falls back to a tiered great-circle distance score.
func (s *Scorer) locationScore(p *model.Property, wanted string) float64 {
	want := strings.ToLower(strings.TrimSpace(wanted))
	have := strings.ToLower(strings.TrimSpace(p.Location))
	if want == "" {
		return 0.0
	}

	if alias, ok := locationAliases[want]; ok {
		want = alias
	}

	if strings.Contains(have, want) || strings.Contains(want, have) {
		return 1.0
	}

	if s.locations != nil {
		wantCoords := s.locations.CoordinatesFor(want)
		haveCoords := p.Coordinates
		if haveCoords == nil {
			haveCoords = s.locations.CoordinatesFor(p.Location)
		}
		if wantCoords != nil && haveCoords != nil {
			km := haversineKm(wantCoords.Lat, wantCoords.Lng, haveCoords.Lat, haveCoords.Lng)
			return distanceScore(km)
		}
	}

	return 0.0
}

// reasons renders a templated explanation for every sub-score at or above
// the threshold, in a fixed criterion order.
func (s *Scorer) reasons(subScores map[string]model.SubScore) []string {
	templates := []struct {
		criterion string
		text      string
	}{
		{model.CriterionBudget, ReasonBudgetFit},
		{model.CriterionEnvironment, ReasonEnvironmentMatch},
		{model.CriterionFeatures, ReasonFeatureMatch},
		{model.CriterionCapacity, ReasonCapacityFit},
		{model.CriterionLocation, ReasonLocationMatch},
	}

	reasons := []string{}
	for _, t := range templates {
		if ss, ok := subScores[t.criterion]; ok && ss.Score >= s.cfg.ReasonThreshold {
			reasons = append(reasons, t.text)
		}
	}
	return reasons
}

// haversineKm is the great-circle distance between two points in kilometers
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// distanceScore maps a distance to a score using tiers users recognize:
// same area, nearby city, regional, same state, far away.
func distanceScore(km float64) float64 {
	switch {
	case km <= 5:
		return 1.0
	case km <= 25:
		return 0.9
	case km <= 100:
		return 0.7
	case km <= 500:
		return 0.4
	default:
		return 0.1
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
