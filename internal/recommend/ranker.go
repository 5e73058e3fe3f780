// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"sort"
)

// Ranker produces the final ordered recommendation list from a
// snapshot and a user profile. It is pure: same snapshot, same profile,
// same rated set and same limit always yield the same list.
type Ranker struct{}

// NewRanker creates a Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank scores every snapshot movie the user has not rated and returns
// the top entries, at most limit.
//
// With a non-empty profile each candidate scores the dot product of
// its vector with the profile; featureless candidates score 0. With an
// empty profile, or when every candidate scored 0 (a degenerate
// corpus), the candidates are ranked by popularity instead.
//
// Ties break by popularity descending, then by movie ID ascending, so
// the ordering is total and deterministic. The caller validates limit;
// Rank treats limit < 1 as an empty request.
func (r *Ranker) Rank(idx *CorpusIndex, profile UserProfile, rated map[int64]struct{}, limit int) ([]ScoredMovie, Mode) {
	if limit < 1 || idx.Len() == 0 {
		return []ScoredMovie{}, ModeContent
	}

	movies := idx.Movies()
	candidates := make([]ScoredMovie, 0, len(movies))
	for i := range movies {
		id := movies[i].ID
		if _, ok := rated[id]; ok {
			continue
		}
		candidates = append(candidates, ScoredMovie{MovieID: id})
	}
	if len(candidates) == 0 {
		return []ScoredMovie{}, ModeContent
	}

	mode := ModePopularity
	if !profile.IsEmpty() {
		mode = ModeContent
		allZero := true
		for i := range candidates {
			vec, _ := idx.Vector(candidates[i].MovieID)
			score := profile.Vector.Dot(vec)
			candidates[i].Score = score
			if score != 0 {
				allZero = false
			}
		}
		// A warm profile against an all-featureless candidate set
		// carries no ordering signal; fall back to popularity. A set
		// with negative scores is not degenerate: disliked-similar
		// movies must sort below unrelated zero-score ones.
		if allZero {
			mode = ModePopularity
		}
	}

	if mode == ModePopularity {
		for i := range candidates {
			candidates[i].Score = idx.Popularity(candidates[i].MovieID)
		}
	}

	sortScored(candidates, idx)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, mode
}

// sortScored orders scored movies by score descending, popularity
// descending, then movie ID ascending.
func sortScored(scored []ScoredMovie, idx *CorpusIndex) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		pi, pj := idx.Popularity(scored[i].MovieID), idx.Popularity(scored[j].MovieID)
		if pi != pj {
			return pi > pj
		}
		return scored[i].MovieID < scored[j].MovieID
	})
}
