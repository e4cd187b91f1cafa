package service

import (
	"math"
	"testing"

	"summerhome/internal/config"
	"summerhome/internal/model"
)

func testScoringConfig() config.ScoringConfig {
	return config.ScoringConfig{
		WeightLocation:      0.25,
		WeightBudget:        0.25,
		WeightFeatures:      0.20,
		WeightEnvironment:   0.15,
		WeightCapacity:      0.15,
		OccupancyPerBedroom: 2,
		ReasonThreshold:     0.7,
	}
}

func intPtr(n int) *int { return &n }

func mustCriteria(t *testing.T, groupSize int, environment string, minBudget, maxBudget float64, location string, features []string) *model.SearchCriteria {
	t.Helper()
	c, err := model.NewSearchCriteria(groupSize, environment, minBudget, maxBudget, location, features, "")
	if err != nil {
		t.Fatalf("NewSearchCriteria: %v", err)
	}
	return c
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	properties := []model.Property{
		{ID: "P1", Location: "Lake Tahoe", PropertyType: "cabin", PricePerNight: 220, Features: []string{"wifi", "kayaks"}, Bedrooms: intPtr(3)},
		{ID: "P2", Location: "Miami", PropertyType: "condo", PricePerNight: 9000, Bedrooms: intPtr(1)},
		{ID: "P3", Location: "Nowhere", PropertyType: "shed", PricePerNight: 1},
	}
	criteria := mustCriteria(t, 6, "lake", 100, 300, "Banff", []string{"wifi", "pool", "sauna"})

	for _, p := range properties {
		p := p
		result := scorer.Score(&p, criteria)
		if result.Score < 0 || result.Score > 1 {
			t.Errorf("property %s: score %v out of [0,1]", p.ID, result.Score)
		}
		for name, ss := range result.SubScores {
			if ss.Score < 0 || ss.Score > 1 {
				t.Errorf("property %s: sub-score %s = %v out of [0,1]", p.ID, name, ss.Score)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)
	p := model.Property{ID: "P1", Location: "Lake Tahoe", PropertyType: "cabin", PricePerNight: 220, Features: []string{"wifi"}, Bedrooms: intPtr(3)}
	criteria := mustCriteria(t, 4, "lake", 100, 300, "tahoe", []string{"wifi"})

	first := scorer.Score(&p, criteria)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(&p, criteria); got.Score != first.Score {
			t.Fatalf("run %d: score %v, want %v", i, got.Score, first.Score)
		}
	}
}

func TestBudgetScore(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	tests := []struct {
		name      string
		price     float64
		min, max  float64
		want      float64
	}{
		{"inside range", 200, 100, 300, 1.0},
		{"at min bound", 100, 100, 300, 1.0},
		{"at max bound", 300, 100, 300, 1.0},
		{"half range above", 400, 100, 300, 0.5},
		{"full range above", 500, 100, 300, 0.0},
		{"half range below", 0, 100, 300, 0.5},
		{"far above floors at zero", 5000, 100, 300, 0.0},
		{"zero width range uses max", 150, 100, 100, 0.5},
		{"zero budget entirely", 50, 0, 0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.budgetScore(tt.price, tt.min, tt.max)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("budgetScore(%v, %v, %v) = %v, want %v", tt.price, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestBudgetScoreMonotoneDecay(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)
	prev := scorer.budgetScore(300, 100, 300)
	for price := 310.0; price <= 600; price += 10 {
		got := scorer.budgetScore(price, 100, 300)
		if got > prev {
			t.Fatalf("budgetScore increased from %v to %v at price %v", prev, got, price)
		}
		prev = got
	}
}

func TestEnvironmentScore(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	tests := []struct {
		name     string
		property model.Property
		want     model.Environment
		score    float64
	}{
		{
			"exact match via known location",
			model.Property{ID: "P1", Location: "Banff", PropertyType: "chalet"},
			model.EnvMountain, 1.0,
		},
		{
			"exact match via keywords",
			model.Property{ID: "P2", Location: "Somewhere", PropertyType: "cabin", Features: []string{"lake_view", "kayaks"}},
			model.EnvLake, 1.0,
		},
		{
			"adjacent lake for mountain request",
			model.Property{ID: "P3", Location: "Lake Tahoe", PropertyType: "cabin"},
			model.EnvMountain, adjacentEnvironmentCredit,
		},
		{
			"city adjacent to nothing",
			model.Property{ID: "P4", Location: "Miami", PropertyType: "condo"},
			model.EnvCity, 0.0,
		},
		{
			"unclassifiable property",
			model.Property{ID: "P5", Location: "Somewhere", PropertyType: "dwelling"},
			model.EnvBeach, 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.environmentScore(&tt.property, tt.want)
			if got != tt.score {
				t.Errorf("environmentScore = %v, want %v", got, tt.score)
			}
		})
	}
}

func TestFeatureScore(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)
	p := model.Property{
		ID: "P1", Location: "Lake Tahoe", PropertyType: "cabin", PricePerNight: 200,
		Features: []string{"wifi", "fireplace"},
		Tags:     []string{"pet_friendly"},
	}

	tests := []struct {
		name      string
		requested []string
		want      float64
	}{
		{"no features requested", nil, 1.0},
		{"all present", []string{"wifi", "fireplace"}, 1.0},
		{"tag counts as feature", []string{"pet_friendly"}, 1.0},
		{"case insensitive", []string{"WiFi"}, 1.0},
		{"partial overlap", []string{"wifi", "pool"}, 0.5},
		{"one of three", []string{"wifi", "pool", "sauna"}, 1.0 / 3.0},
		{"none present", []string{"pool", "sauna"}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.featureScore(&p, tt.requested)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("featureScore(%v) = %v, want %v", tt.requested, got, tt.want)
			}
		})
	}
}

func TestCapacityScore(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	tests := []struct {
		name      string
		bedrooms  *int
		groupSize int
		want      float64
	}{
		{"unknown bedrooms is neutral", nil, 4, neutralScore},
		{"plenty of room", intPtr(3), 4, 1.0},
		{"exactly enough", intPtr(2), 4, 1.0},
		{"short by half", intPtr(1), 4, 0.5},
		{"zero bedrooms", intPtr(0), 4, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.capacityScore(tt.bedrooms, tt.groupSize)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("capacityScore = %v, want %v", got, tt.want)
			}
		})
	}
}

type coordMap map[string]model.Coordinates

func (m coordMap) CoordinatesFor(location string) *model.Coordinates {
	if c, ok := m[location]; ok {
		return &c
	}
	return nil
}

func TestLocationScore(t *testing.T) {
	resolver := coordMap{
		"lake tahoe": {Lat: 39.0968, Lng: -120.0324},
		"new york":   {Lat: 40.7128, Lng: -74.0060},
	}
	scorer := NewScorer(testScoringConfig(), resolver)

	tahoe := model.Property{ID: "P1", Location: "Lake Tahoe", Coordinates: &model.Coordinates{Lat: 39.0968, Lng: -120.0324}}
	boston := model.Property{ID: "P2", Location: "Boston", Coordinates: &model.Coordinates{Lat: 42.3601, Lng: -71.0589}}
	nowhere := model.Property{ID: "P3", Location: "Atlantis"}

	tests := []struct {
		name     string
		property *model.Property
		wanted   string
		want     float64
	}{
		{"exact text match", &tahoe, "Lake Tahoe", 1.0},
		{"case insensitive substring", &tahoe, "tahoe", 1.0},
		{"alias resolves", &tahoe, "Tahoe", 1.0},
		{"nearby city via coordinates", &boston, "new york", 0.4},
		{"no text or coordinate match", &nowhere, "new york", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.locationScore(tt.property, tt.wanted)
			if got != tt.want {
				t.Errorf("locationScore(%q) = %v, want %v", tt.wanted, got, tt.want)
			}
		})
	}
}

func TestScoreNormalizationWithoutLocation(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	// In budget (1.0), exact environment (1.0), one of two features (0.5),
	// unknown bedrooms (0.5 neutral), no location filter. With location's
	// weight excluded, the total is 0.475/0.75.
	p := model.Property{
		ID: "P1", Location: "Banff", PropertyType: "chalet", PricePerNight: 200,
		Features: []string{"wifi"},
	}
	criteria := mustCriteria(t, 4, "mountain", 100, 300, "", []string{"wifi", "pool"})

	result := scorer.Score(&p, criteria)

	want := (0.25*1.0 + 0.15*1.0 + 0.20*0.5 + 0.15*0.5) / 0.75
	if math.Abs(result.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", result.Score, want)
	}
	if result.Score <= 0.5 || result.Score >= 1.0 {
		t.Errorf("score = %v, want strictly between 0.5 and 1.0", result.Score)
	}
	if _, ok := result.SubScores[model.CriterionLocation]; ok {
		t.Error("location sub-score present despite no location filter")
	}
}

func TestReasons(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	p := model.Property{
		ID: "P1", Location: "Lake Tahoe", PropertyType: "cabin", PricePerNight: 200,
		Features: []string{"wifi", "kayaks"}, Bedrooms: intPtr(3),
	}
	criteria := mustCriteria(t, 4, "lake", 100, 300, "Lake Tahoe", []string{"wifi"})

	result := scorer.Score(&p, criteria)

	want := []string{
		ReasonBudgetFit,
		ReasonEnvironmentMatch,
		ReasonFeatureMatch,
		ReasonCapacityFit,
		ReasonLocationMatch,
	}
	if len(result.Reasons) != len(want) {
		t.Fatalf("got %d reasons %v, want %d", len(result.Reasons), result.Reasons, len(want))
	}
	for i, r := range want {
		if result.Reasons[i] != r {
			t.Errorf("reason %d = %q, want %q", i, result.Reasons[i], r)
		}
	}
}

func TestReasonsBelowThreshold(t *testing.T) {
	scorer := NewScorer(testScoringConfig(), nil)

	// Price way over budget, wrong environment, missing features: almost
	// nothing about this property should be presented as a selling point.
	p := model.Property{
		ID: "P1", Location: "Miami", PropertyType: "condo", PricePerNight: 900,
		Features: []string{"pool"}, Bedrooms: intPtr(1),
	}
	criteria := mustCriteria(t, 2, "mountain", 100, 200, "", []string{"fireplace"})

	result := scorer.Score(&p, criteria)
	for _, r := range result.Reasons {
		if r != ReasonCapacityFit {
			t.Errorf("unexpected reason %q for a poor match", r)
		}
	}
}

func TestDistanceScoreTiers(t *testing.T) {
	tests := []struct {
		km   float64
		want float64
	}{
		{0, 1.0},
		{5, 1.0},
		{10, 0.9},
		{25, 0.9},
		{80, 0.7},
		{300, 0.4},
		{2000, 0.1},
	}
	for _, tt := range tests {
		if got := distanceScore(tt.km); got != tt.want {
			t.Errorf("distanceScore(%v) = %v, want %v", tt.km, got, tt.want)
		}
	}
}

func TestHaversineKm(t *testing.T) {
	// New York to Boston is roughly 306 km great-circle.
	got := haversineKm(40.7128, -74.0060, 42.3601, -71.0589)
	if got < 290 || got > 320 {
		t.Errorf("haversineKm(NYC, Boston) = %v, want ~306", got)
	}

	if got := haversineKm(39.0968, -120.0324, 39.0968, -120.0324); got != 0 {
		t.Errorf("haversineKm(same point) = %v, want 0", got)
	}
}
