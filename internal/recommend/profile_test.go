// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"math"
	"testing"
)

func TestBuildProfileNormalized(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())
	b := NewProfileBuilder(2.5)

	profile := b.Build([]Rating{{UserID: 1, MovieID: 1, Value: 5.0}}, idx)
	if profile.IsEmpty() {
		t.Fatal("profile unexpectedly empty")
	}
	if norm := profile.Vector.Norm(); math.Abs(norm-1.0) > floatTolerance {
		t.Errorf("profile norm = %v, want 1.0", norm)
	}
}

func TestBuildProfileEmptyCases(t *testing.T) {
	catalog := append(testCatalog(), Movie{ID: 9, Title: "Blank"})
	idx := buildTestIndex(t, catalog)
	b := NewProfileBuilder(2.5)

	tests := []struct {
		name    string
		ratings []Rating
	}{
		{
			name:    "no ratings",
			ratings: nil,
		},
		{
			name:    "only neutral ratings",
			ratings: []Rating{{UserID: 1, MovieID: 1, Value: 2.5}},
		},
		{
			name:    "only featureless movies",
			ratings: []Rating{{UserID: 1, MovieID: 9, Value: 5.0}},
		},
		{
			name:    "only unknown movies",
			ratings: []Rating{{UserID: 1, MovieID: 404, Value: 5.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := b.Build(tt.ratings, idx)
			if !profile.IsEmpty() {
				t.Errorf("profile not empty: %v", profile.Vector)
			}
		})
	}
}

func TestBuildProfileCancellation(t *testing.T) {
	// Equal and opposite ratings on the same movie vector cancel to
	// the zero vector, which must read as empty.
	idx := buildTestIndex(t, testCatalog())
	b := NewProfileBuilder(2.5)

	profile := b.Build([]Rating{
		{UserID: 1, MovieID: 1, Value: 5.0},
		{UserID: 1, MovieID: 1, Value: 0.0},
	}, idx)
	if !profile.IsEmpty() {
		t.Errorf("cancelled profile not empty: %v", profile.Vector)
	}
}

func TestBuildProfileNegativeSuppression(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())
	b := NewProfileBuilder(2.5)

	// Disliking the Action movie must push the profile away from the
	// other Action movie.
	profile := b.Build([]Rating{{UserID: 1, MovieID: 1, Value: 0.5}}, idx)
	if profile.IsEmpty() {
		t.Fatal("profile unexpectedly empty")
	}
	v2, _ := idx.Vector(2)
	if score := profile.Vector.Dot(v2); score >= 0 {
		t.Errorf("disliked genre scores %v, want negative", score)
	}
}

func TestBuildProfileLatestRatingWins(t *testing.T) {
	// The persistence layer upserts ratings, so the builder sees one
	// entry per (user, movie) pair. A replaced value must change the
	// profile rather than stack on the old one.
	idx := buildTestIndex(t, testCatalog())
	b := NewProfileBuilder(2.5)

	first := b.Build([]Rating{{UserID: 1, MovieID: 1, Value: 5.0}}, idx)
	replaced := b.Build([]Rating{{UserID: 1, MovieID: 1, Value: 1.0}}, idx)

	v2, _ := idx.Vector(2)
	if firstScore, replacedScore := first.Vector.Dot(v2), replaced.Vector.Dot(v2); firstScore <= replacedScore {
		t.Errorf("replaced rating did not flip preference: %v vs %v", firstScore, replacedScore)
	}
}
