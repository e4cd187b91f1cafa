package store

import (
	"os"
	"path/filepath"
	"testing"

	"summerhome/internal/model"
)

func writePropertiesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write properties file: %v", err)
	}
	return path
}

func TestLoadProperties(t *testing.T) {
	path := writePropertiesFile(t, `[
		{"property_id": "P001", "location": "Lake Tahoe", "property_type": "cabin", "price_per_night": 220, "features": ["wifi"], "bedrooms": 3, "coordinates": {"lat": 39.0968, "lng": -120.0324}},
		{"property_id": "P002", "location": "Banff", "property_type": "chalet", "price_per_night": 310, "bedrooms": 4}
	]`)

	s, err := LoadProperties(path)
	if err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	p, ok := s.ByID("P001")
	if !ok {
		t.Fatal("ByID(P001) not found")
	}
	if p.Location != "Lake Tahoe" || p.PricePerNight != 220 {
		t.Errorf("P001 = %+v, fields not decoded", p)
	}
	if p.Coordinates == nil || p.Coordinates.Lat != 39.0968 {
		t.Errorf("P001 coordinates = %+v, want decoded lat/lng", p.Coordinates)
	}
	if p.Bedrooms == nil || *p.Bedrooms != 3 {
		t.Errorf("P001 bedrooms = %v, want 3", p.Bedrooms)
	}
}

func TestLoadPropertiesSkipsMalformed(t *testing.T) {
	path := writePropertiesFile(t, `[
		{"property_id": "P001", "location": "Lake Tahoe", "price_per_night": 220},
		{"location": "No ID", "price_per_night": 100},
		{"property_id": "P003", "location": "", "price_per_night": 100},
		{"property_id": "P004", "location": "Free", "price_per_night": 0},
		{"property_id": "P005", "location": "Bad bedrooms", "price_per_night": 100, "bedrooms": "three"},
		{"property_id": "P006", "location": "Miami", "price_per_night": 180}
	]`)

	s, err := LoadProperties(path)
	if err != nil {
		t.Fatalf("LoadProperties: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (malformed records skipped)", s.Len())
	}
	for _, id := range []string{"P001", "P006"} {
		if _, ok := s.ByID(id); !ok {
			t.Errorf("valid property %s missing", id)
		}
	}
}

func TestLoadPropertiesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadProperties(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("LoadProperties succeeded on a missing file")
		}
	})

	t.Run("not a json array", func(t *testing.T) {
		path := writePropertiesFile(t, `{"property_id": "P001"}`)
		if _, err := LoadProperties(path); err == nil {
			t.Error("LoadProperties succeeded on a non-array document")
		}
	})
}

func TestByIDUnknown(t *testing.T) {
	s := NewPropertyStore([]model.Property{
		{ID: "P001", Location: "Lake Tahoe", PricePerNight: 220},
	})
	if _, ok := s.ByID("P999"); ok {
		t.Error("ByID(P999) returned a property")
	}
}

func TestCoordinatesFor(t *testing.T) {
	s := NewPropertyStore([]model.Property{
		{ID: "P001", Location: "Lake Tahoe", PricePerNight: 220, Coordinates: &model.Coordinates{Lat: 39.0968, Lng: -120.0324}},
		{ID: "P002", Location: "Banff", PricePerNight: 310},
	})

	if c := s.CoordinatesFor("lake tahoe"); c == nil || c.Lat != 39.0968 {
		t.Errorf("CoordinatesFor(lake tahoe) = %+v, want the stored coordinates", c)
	}
	if c := s.CoordinatesFor("Banff"); c != nil {
		t.Errorf("CoordinatesFor(Banff) = %+v, want nil when no property has coordinates", c)
	}
	if c := s.CoordinatesFor("Atlantis"); c != nil {
		t.Errorf("CoordinatesFor(Atlantis) = %+v, want nil", c)
	}
}
