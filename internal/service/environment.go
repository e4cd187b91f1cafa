package service

import (
	"strings"

	"summerhome/internal/model"
)

// environmentAdjacency lists which environments earn partial credit when
// the exact one wasn't matched. Mountain and lake settings overlap heavily
// in practice (alpine lakes), as do lake and beach (waterfront); city is
// adjacent to nothing.
var environmentAdjacency = map[model.Environment][]model.Environment{
	model.EnvMountain: {model.EnvLake},
	model.EnvLake:     {model.EnvMountain, model.EnvBeach},
	model.EnvBeach:    {model.EnvLake},
	model.EnvCity:     {},
}

// environmentKeywords maps each environment to the words that signal it in
// a property's type, features, tags or location text
var environmentKeywords = map[model.Environment][]string{
	model.EnvMountain: {"mountain", "mountain_view", "hiking", "ski_in_out", "ski", "chalet", "cabin", "alpine"},
	model.EnvLake:     {"lake", "lake_view", "lakeside", "lakefront", "kayaks", "waterfront"},
	model.EnvBeach:    {"beach", "beachfront", "ocean", "ocean_view", "coastal", "seaside"},
	model.EnvCity:     {"city", "city_center", "urban", "downtown", "apartment", "condo", "loft"},
}

// knownLocations assigns an environment to well-known destinations, used
// before keyword matching since the place name is the strongest signal
var knownLocations = map[string]model.Environment{
	"banff": model.EnvMountain, "aspen": model.EnvMountain, "whistler": model.EnvMountain,
	"chamonix": model.EnvMountain, "zermatt": model.EnvMountain, "vail": model.EnvMountain,
	"park city": model.EnvMountain, "jackson hole": model.EnvMountain, "telluride": model.EnvMountain,

	"lake tahoe": model.EnvLake, "lake como": model.EnvLake, "lake geneva": model.EnvLake,
	"lake louise": model.EnvLake, "lake placid": model.EnvLake, "lake george": model.EnvLake,

	"miami": model.EnvBeach, "san diego": model.EnvBeach, "bali": model.EnvBeach,
	"cancun": model.EnvBeach, "maui": model.EnvBeach, "santorini": model.EnvBeach,
	"malibu": model.EnvBeach, "key west": model.EnvBeach, "outer banks": model.EnvBeach,

	"new york": model.EnvCity, "london": model.EnvCity, "tokyo": model.EnvCity,
	"paris": model.EnvCity, "barcelona": model.EnvCity, "rome": model.EnvCity,
	"boston": model.EnvCity, "chicago": model.EnvCity, "san francisco": model.EnvCity,
	"seattle": model.EnvCity, "denver": model.EnvCity, "las vegas": model.EnvCity,
}

// locationAliases folds common shorthand into the canonical location name
// before text matching
var locationAliases = map[string]string{
	"nyc":         "new york",
	"la":          "los angeles",
	"sf":          "san francisco",
	"miami beach": "miami",
	"tahoe":       "lake tahoe",
}

// classificationOrder fixes tie-breaking so classification is deterministic
var classificationOrder = []model.Environment{
	model.EnvMountain, model.EnvLake, model.EnvBeach, model.EnvCity,
}

// ClassifyEnvironment derives a property's environment from its location,
// type, features and tags. Returns EnvUnknown when nothing signals any
// environment.
func ClassifyEnvironment(p *model.Property) model.Environment {
	location := strings.ToLower(strings.TrimSpace(p.Location))
	if env, ok := knownLocations[location]; ok {
		return env
	}

	var sb strings.Builder
	sb.WriteString(location)
	sb.WriteByte(' ')
	sb.WriteString(strings.ToLower(p.PropertyType))
	for _, f := range p.Features {
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(f))
	}
	for _, t := range p.Tags {
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(t))
	}
	text := sb.String()

	best := model.EnvUnknown
	bestHits := 0
	for _, env := range classificationOrder {
		hits := 0
		for _, kw := range environmentKeywords[env] {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = env
			bestHits = hits
		}
	}
	return best
}
