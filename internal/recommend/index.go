// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"sort"
	"time"
)

// CorpusIndex is an immutable snapshot of the catalog: every movie with
// its normalized feature vector plus the corpus statistics the vectors
// were computed from. Readers share a snapshot freely; the engine
// replaces the whole snapshot on rebuild and never mutates one in
// place.
type CorpusIndex struct {
	version          int64
	builtAt          time.Time
	stats            *CorpusStats
	movies           []Movie
	byID             map[int64]int
	vectors          map[int64]FeatureVector
	featurelessCount int
}

// BuildIndex constructs a snapshot from the full catalog in two passes:
// the first accumulates document frequencies, the second extracts the
// per-movie vectors against the finished statistics. The input slice is
// copied; later mutation of it does not affect the snapshot.
func BuildIndex(movies []Movie, extractor *FeatureExtractor, version int64) *CorpusIndex {
	sorted := make([]Movie, len(movies))
	copy(sorted, movies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	stats := NewCorpusStats()
	for i := range sorted {
		stats.AddDocument(extractor.Terms(&sorted[i]))
	}

	idx := &CorpusIndex{
		version: version,
		builtAt: time.Now().UTC(),
		stats:   stats,
		movies:  sorted,
		byID:    make(map[int64]int, len(sorted)),
		vectors: make(map[int64]FeatureVector, len(sorted)),
	}
	for i := range sorted {
		m := &sorted[i]
		vec := extractor.Extract(m, stats)
		if vec.IsZero() {
			idx.featurelessCount++
		}
		idx.byID[m.ID] = i
		idx.vectors[m.ID] = vec
	}
	return idx
}

// Version returns the snapshot version.
func (idx *CorpusIndex) Version() int64 {
	return idx.version
}

// BuiltAt returns when the snapshot was built.
func (idx *CorpusIndex) BuiltAt() time.Time {
	return idx.builtAt
}

// Len returns the number of movies in the snapshot.
func (idx *CorpusIndex) Len() int {
	return len(idx.movies)
}

// FeaturelessCount returns how many movies have zero vectors.
func (idx *CorpusIndex) FeaturelessCount() int {
	return idx.featurelessCount
}

// TermCount returns the vocabulary size of the snapshot.
func (idx *CorpusIndex) TermCount() int {
	return idx.stats.TermCount()
}

// DocFreq returns the number of movies containing term.
func (idx *CorpusIndex) DocFreq(term string) int {
	return idx.stats.DocFreq(term)
}

// Contains reports whether the snapshot holds the given movie.
func (idx *CorpusIndex) Contains(movieID int64) bool {
	_, ok := idx.byID[movieID]
	return ok
}

// Movie returns the movie with the given ID.
func (idx *CorpusIndex) Movie(movieID int64) (Movie, bool) {
	i, ok := idx.byID[movieID]
	if !ok {
		return Movie{}, false
	}
	return idx.movies[i], true
}

// Movies returns the snapshot's movies in ascending ID order. The
// returned slice is shared and must not be modified.
func (idx *CorpusIndex) Movies() []Movie {
	return idx.movies
}

// Vector returns the movie's normalized feature vector. The zero
// vector marks a featureless movie. The returned map is shared and
// must not be modified.
func (idx *CorpusIndex) Vector(movieID int64) (FeatureVector, bool) {
	vec, ok := idx.vectors[movieID]
	return vec, ok
}

// IsFeatureless reports whether the movie exists and has a zero vector.
func (idx *CorpusIndex) IsFeatureless(movieID int64) bool {
	vec, ok := idx.vectors[movieID]
	return ok && vec.IsZero()
}

// Popularity returns the movie's popularity, 0 for unknown movies.
func (idx *CorpusIndex) Popularity(movieID int64) float64 {
	i, ok := idx.byID[movieID]
	if !ok {
		return 0
	}
	return idx.movies[i].Popularity
}

// Similarity returns the cosine similarity of two movies' vectors.
// Symmetric; 0 when either movie is unknown or featureless.
func (idx *CorpusIndex) Similarity(aID, bID int64) float64 {
	a, ok := idx.vectors[aID]
	if !ok {
		return 0
	}
	b, ok := idx.vectors[bID]
	if !ok {
		return 0
	}
	return a.Dot(b)
}

// SimilarTo returns up to limit movies most similar to movieID,
// excluding the movie itself. Ordering follows ranker rules: score
// descending, popularity descending, then ID ascending.
func (idx *CorpusIndex) SimilarTo(movieID int64, limit int) []ScoredMovie {
	if limit < 1 {
		return nil
	}
	if _, ok := idx.byID[movieID]; !ok {
		return nil
	}

	scored := make([]ScoredMovie, 0, len(idx.movies))
	for i := range idx.movies {
		id := idx.movies[i].ID
		if id == movieID {
			continue
		}
		scored = append(scored, ScoredMovie{MovieID: id, Score: idx.Similarity(movieID, id)})
	}
	sortScored(scored, idx)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
