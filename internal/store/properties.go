package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"summerhome/internal/model"
)

// PropertyStore holds the property dataset in memory. Loaded once at
// startup, read-only afterwards.
type PropertyStore struct {
	properties []model.Property
	byID       map[string]*model.Property
}

// NewPropertyStore builds a store from an already-validated property list
func NewPropertyStore(properties []model.Property) *PropertyStore {
	s := &PropertyStore{
		properties: properties,
		byID:       make(map[string]*model.Property, len(properties)),
	}
	for i := range s.properties {
		s.byID[s.properties[i].ID] = &s.properties[i]
	}
	return s
}

// LoadProperties reads the property dataset from a JSON file. Records that
// fail to decode or fail validation are skipped with a logged warning;
// only an unreadable or structurally invalid file is an error.
func LoadProperties(path string) (*PropertyStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse properties file: %w", err)
	}

	properties := make([]model.Property, 0, len(raw))
	skipped := 0
	for i, rec := range raw {
		var p model.Property
		if err := json.Unmarshal(rec, &p); err != nil {
			log.Printf("Warning: skipping property record %d: %v", i, err)
			skipped++
			continue
		}
		if err := validateProperty(&p); err != nil {
			log.Printf("Warning: skipping property record %d: %v", i, err)
			skipped++
			continue
		}
		properties = append(properties, p)
	}

	if skipped > 0 {
		log.Printf("Loaded %d properties from %s (%d malformed records skipped)", len(properties), path, skipped)
	} else {
		log.Printf("Loaded %d properties from %s", len(properties), path)
	}

	return NewPropertyStore(properties), nil
}

func validateProperty(p *model.Property) error {
	if p.ID == "" {
		return fmt.Errorf("missing property_id")
	}
	if p.Location == "" {
		return fmt.Errorf("property %s has no location", p.ID)
	}
	if p.PricePerNight <= 0 {
		return fmt.Errorf("property %s has non-positive price %.2f", p.ID, p.PricePerNight)
	}
	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		return fmt.Errorf("property %s has negative bedroom count", p.ID)
	}
	return nil
}

// All returns every stored property
func (s *PropertyStore) All() []model.Property {
	return s.properties
}

// Len returns the number of stored properties
func (s *PropertyStore) Len() int {
	return len(s.properties)
}

// ByID looks up a property by its identifier
func (s *PropertyStore) ByID(id string) (*model.Property, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// CoordinatesFor resolves a location name to coordinates by scanning the
// dataset for a property at that location (case-insensitive exact match).
// Returns nil when no property there carries coordinates.
func (s *PropertyStore) CoordinatesFor(location string) *model.Coordinates {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		return nil
	}
	for i := range s.properties {
		p := &s.properties[i]
		if p.Coordinates != nil && strings.ToLower(strings.TrimSpace(p.Location)) == location {
			return p.Coordinates
		}
	}
	return nil
}
