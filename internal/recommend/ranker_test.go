// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"reflect"
	"testing"
)

func rankFor(t *testing.T, idx *CorpusIndex, ratings []Rating, limit int) ([]ScoredMovie, Mode) {
	t.Helper()
	profile := NewProfileBuilder(2.5).Build(ratings, idx)
	rated := make(map[int64]struct{}, len(ratings))
	for _, r := range ratings {
		rated[r.MovieID] = struct{}{}
	}
	return NewRanker().Rank(idx, profile, rated, limit)
}

func ids(items []ScoredMovie) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.MovieID
	}
	return out
}

func TestRankWarmSharedGenreWins(t *testing.T) {
	// Catalog: M1 and M2 share Action, M3 is Drama. Popularity
	// M1=10, M2=5, M3=8. User rates M1 with 5.0: M2 must outrank M3
	// despite lower popularity, and the warm path must be used.
	idx := buildTestIndex(t, testCatalog())
	ratings := []Rating{{UserID: 1, MovieID: 1, Value: 5.0}}

	items, mode := rankFor(t, idx, ratings, 10)
	if mode != ModeContent {
		t.Fatalf("mode = %s, want content", mode)
	}
	if got, want := ids(items), []int64{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranking = %v, want %v", got, want)
	}
}

func TestRankColdStartByPopularity(t *testing.T) {
	// No ratings: pure popularity order M1(10), M3(8), M2(5).
	idx := buildTestIndex(t, testCatalog())

	items, mode := rankFor(t, idx, nil, 10)
	if mode != ModePopularity {
		t.Fatalf("mode = %s, want popularity", mode)
	}
	if got, want := ids(items), []int64{1, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranking = %v, want %v", got, want)
	}
}

func TestRankColdStartLimitTwo(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())

	items, _ := rankFor(t, idx, nil, 2)
	if got, want := ids(items), []int64{1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranking = %v, want %v", got, want)
	}
}

func TestRankExcludesRated(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())
	ratings := []Rating{
		{UserID: 1, MovieID: 1, Value: 5.0},
		{UserID: 1, MovieID: 2, Value: 4.0},
	}

	items, _ := rankFor(t, idx, ratings, 10)
	for _, it := range items {
		if it.MovieID == 1 || it.MovieID == 2 {
			t.Errorf("rated movie %d appeared in output", it.MovieID)
		}
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestRankLimitClampsToCandidates(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())

	items, _ := rankFor(t, idx, nil, 50)
	if len(items) != 3 {
		t.Errorf("got %d items, want all 3 candidates", len(items))
	}
}

func TestRankDeterministic(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())
	ratings := []Rating{{UserID: 1, MovieID: 1, Value: 4.5}}

	first, _ := rankFor(t, idx, ratings, 10)
	for i := 0; i < 10; i++ {
		again, _ := rankFor(t, idx, ratings, 10)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ranking not deterministic: %v vs %v", first, again)
		}
	}
}

func TestRankPopularityTiesByID(t *testing.T) {
	movies := []Movie{
		{ID: 5, Genres: []string{"Action"}, Popularity: 7},
		{ID: 2, Genres: []string{"Drama"}, Popularity: 7},
		{ID: 9, Genres: []string{"Comedy"}, Popularity: 7},
	}
	idx := buildTestIndex(t, movies)

	items, _ := rankFor(t, idx, nil, 10)
	if got, want := ids(items), []int64{2, 5, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("equal popularity ranking = %v, want ascending ids %v", got, want)
	}
}

func TestRankWarmTiesByPopularityThenID(t *testing.T) {
	// M2 and M3 both share only the Action genre with the rated M1
	// and have identical overviews, so their content scores tie.
	movies := []Movie{
		{ID: 1, Genres: []string{"Action"}, Overview: "the original", Popularity: 10},
		{ID: 2, Genres: []string{"Action"}, Overview: "same words here", Popularity: 3},
		{ID: 3, Genres: []string{"Action"}, Overview: "same words here", Popularity: 6},
	}
	idx := buildTestIndex(t, movies)
	ratings := []Rating{{UserID: 1, MovieID: 1, Value: 5.0}}

	items, mode := rankFor(t, idx, ratings, 10)
	if mode != ModeContent {
		t.Fatalf("mode = %s, want content", mode)
	}
	// Equal scores: higher popularity first.
	if got, want := ids(items), []int64{3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("tied ranking = %v, want %v", got, want)
	}
}

func TestRankDegenerateWarmFallsBack(t *testing.T) {
	// The user's profile is warm but every candidate is featureless,
	// so content scores carry no signal and popularity takes over.
	movies := []Movie{
		{ID: 1, Genres: []string{"Action"}, Overview: "rated movie", Popularity: 1},
		{ID: 2, Popularity: 4},
		{ID: 3, Popularity: 9},
	}
	idx := buildTestIndex(t, movies)
	ratings := []Rating{{UserID: 1, MovieID: 1, Value: 5.0}}

	items, mode := rankFor(t, idx, ratings, 10)
	if mode != ModePopularity {
		t.Fatalf("mode = %s, want popularity fallback", mode)
	}
	if got, want := ids(items), []int64{3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("fallback ranking = %v, want %v", got, want)
	}
}

func TestRankDislikeSuppressesSimilar(t *testing.T) {
	// The user's only rating is a dislike, so every candidate scores
	// at or below zero. That is still ordering signal: the unrelated
	// Drama movie (score 0) must outrank the disliked-similar Action
	// movie (negative score) even though the latter is far more
	// popular, and the ranker must stay in content mode.
	movies := []Movie{
		{ID: 1, Genres: []string{"Action"}, Popularity: 1},
		{ID: 2, Genres: []string{"Action"}, Popularity: 100},
		{ID: 3, Genres: []string{"Drama"}, Popularity: 50},
	}
	idx := buildTestIndex(t, movies)
	ratings := []Rating{{UserID: 1, MovieID: 1, Value: 0.5}}

	items, mode := rankFor(t, idx, ratings, 10)
	if mode != ModeContent {
		t.Fatalf("mode = %s, want content", mode)
	}
	if got, want := ids(items), []int64{3, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("ranking = %v, want %v", got, want)
	}
	if items[0].Score != 0 {
		t.Errorf("unrelated candidate score = %f, want 0", items[0].Score)
	}
	if items[1].Score >= 0 {
		t.Errorf("disliked-similar candidate score = %f, want negative", items[1].Score)
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	idx := buildTestIndex(t, nil)

	items, _ := NewRanker().Rank(idx, UserProfile{}, nil, 10)
	if len(items) != 0 {
		t.Errorf("empty catalog produced %d items", len(items))
	}
}

func TestRankAllRated(t *testing.T) {
	idx := buildTestIndex(t, testCatalog())
	ratings := []Rating{
		{UserID: 1, MovieID: 1, Value: 4},
		{UserID: 1, MovieID: 2, Value: 4},
		{UserID: 1, MovieID: 3, Value: 4},
	}

	items, _ := rankFor(t, idx, ratings, 10)
	if len(items) != 0 {
		t.Errorf("fully rated catalog produced %d items", len(items))
	}
}
