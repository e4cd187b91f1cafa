package model

import (
	"fmt"
	"strings"
)

// MaxPriorityFeatures caps how many feature tags a search may prioritize
const MaxPriorityFeatures = 3

// SearchCriteria is validated user search input. Construct via NewSearchCriteria;
// a value that came through it is safe to score without further checks.
type SearchCriteria struct {
	GroupSize   int         `json:"group_size"`
	Environment Environment `json:"environment"`
	MinBudget   float64     `json:"min_budget"`
	MaxBudget   float64     `json:"max_budget"`
	Location    string      `json:"location,omitempty"`
	Features    []string    `json:"features,omitempty"`
	Preferences string      `json:"preferences,omitempty"`
}

// NewSearchCriteria validates and normalizes raw search input.
// Malformed criteria are rejected here, never inside the scorer.
func NewSearchCriteria(groupSize int, environment string, minBudget, maxBudget float64, location string, features []string, preferences string) (*SearchCriteria, error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("group size must be at least 1, got %d", groupSize)
	}
	if !ValidEnvironment(environment) {
		return nil, fmt.Errorf("environment must be one of mountain, lake, beach, city; got %q", environment)
	}
	if minBudget < 0 || maxBudget < 0 {
		return nil, fmt.Errorf("budget values must be non-negative")
	}
	if minBudget > maxBudget {
		return nil, fmt.Errorf("minimum budget %.2f exceeds maximum budget %.2f", minBudget, maxBudget)
	}

	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) > MaxPriorityFeatures {
		return nil, fmt.Errorf("at most %d prioritized features allowed, got %d", MaxPriorityFeatures, len(cleaned))
	}

	return &SearchCriteria{
		GroupSize:   groupSize,
		Environment: Environment(environment),
		MinBudget:   minBudget,
		MaxBudget:   maxBudget,
		Location:    strings.TrimSpace(location),
		Features:    cleaned,
		Preferences: strings.TrimSpace(preferences),
	}, nil
}

// HasLocation reports whether a location filter was given
func (c *SearchCriteria) HasLocation() bool {
	return c.Location != ""
}
