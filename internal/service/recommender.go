package service

import (
	"sort"

	"summerhome/internal/model"
	"summerhome/internal/store"
)

// Recommender runs the scorer across the whole property store and returns
// the best matches
type Recommender struct {
	properties *store.PropertyStore
	scorer     *Scorer
}

// NewRecommender creates a recommender over the given store and scorer
func NewRecommender(properties *store.PropertyStore, scorer *Scorer) *Recommender {
	return &Recommender{
		properties: properties,
		scorer:     scorer,
	}
}

// Recommend scores every stored property against the criteria and returns
// the topK results ordered by descending score, ties broken by ascending
// property ID so rankings are stable across runs. An empty store yields an
// empty slice; topK larger than the store returns everything.
func (r *Recommender) Recommend(criteria *model.SearchCriteria, topK int) []model.MatchResult {
	all := r.properties.All()
	results := make([]model.MatchResult, 0, len(all))

	for i := range all {
		results = append(results, r.scorer.Score(&all[i], criteria))
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Property.ID < results[j].Property.ID
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}
