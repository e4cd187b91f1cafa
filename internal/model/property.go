package model

import "strings"

// Environment classifies the setting a property sits in
type Environment string

const (
	EnvMountain Environment = "mountain"
	EnvLake     Environment = "lake"
	EnvBeach    Environment = "beach"
	EnvCity     Environment = "city"
	EnvUnknown  Environment = ""
)

// ValidEnvironment reports whether s names a supported environment
func ValidEnvironment(s string) bool {
	switch Environment(s) {
	case EnvMountain, EnvLake, EnvBeach, EnvCity:
		return true
	}
	return false
}

// Coordinates is a geographic point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property represents a vacation-rental property. Immutable after load.
type Property struct {
	ID            string       `json:"property_id"`
	Location      string       `json:"location"`
	PropertyType  string       `json:"property_type"`
	PricePerNight float64      `json:"price_per_night"`
	Features      []string     `json:"features"`
	Tags          []string     `json:"tags,omitempty"`
	Bedrooms      *int         `json:"bedrooms,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

// HasFeature reports whether the property carries the given feature tag
// (case-insensitive, checked against both features and tags)
func (p *Property) HasFeature(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, f := range p.Features {
		if strings.EqualFold(strings.TrimSpace(f), tag) {
			return true
		}
	}
	for _, t := range p.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}
