// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

// UserProfile is a user's taste vector in the same term space as the
// movie vectors of one snapshot. An empty profile (zero vector) means
// cold start.
type UserProfile struct {
	Vector FeatureVector
}

// IsEmpty reports whether the profile carries no signal.
func (p UserProfile) IsEmpty() bool {
	return p.Vector.IsZero()
}

// ProfileBuilder folds a user's ratings into a single taste vector.
type ProfileBuilder struct {
	neutralRating float64
}

// NewProfileBuilder creates a builder pivoting signed weights around
// neutralRating.
func NewProfileBuilder(neutralRating float64) *ProfileBuilder {
	return &ProfileBuilder{neutralRating: neutralRating}
}

// Build computes the profile over the given snapshot. Each rating
// contributes its movie's vector scaled by (value - neutral): liked
// movies pull the profile toward them, disliked movies push away, and
// a neutral rating contributes nothing. Ratings on movies absent from
// the snapshot, and on featureless movies, are skipped. The sum is
// L2-normalized; if it is the zero vector the profile is empty and the
// caller falls back to popularity ranking.
func (b *ProfileBuilder) Build(ratings []Rating, idx *CorpusIndex) UserProfile {
	sum := make(FeatureVector)
	for _, r := range ratings {
		vec, ok := idx.Vector(r.MovieID)
		if !ok || vec.IsZero() {
			continue
		}
		signed := r.Value - b.neutralRating
		if signed == 0 {
			continue
		}
		for term, w := range vec {
			sum[term] += signed * w
		}
	}

	// Opposing ratings can cancel exactly; drop the dead terms so the
	// profile is genuinely zero, not a map of zeros.
	for term, w := range sum {
		if w == 0 {
			delete(sum, term)
		}
	}

	sum.normalize()
	return UserProfile{Vector: sum}
}
