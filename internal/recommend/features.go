// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"math"
	"strings"
	"unicode"
)

// genreTermPrefix namespaces genre terms so an exact genre label can
// never collide with an overview word. "Western" the genre and
// "western" in an overview stay distinct features.
const genreTermPrefix = "genre:"

// FeatureVector is a sparse tf-idf vector keyed by term.
type FeatureVector map[string]float64

// IsZero reports whether the vector has no non-zero components. A
// featureless movie and an empty (cold start) profile are both zero
// vectors.
func (v FeatureVector) IsZero() bool {
	return len(v) == 0
}

// Dot returns the dot product of two sparse vectors. For vectors of
// unit length this is their cosine similarity. The zero vector yields 0
// against anything.
func (v FeatureVector) Dot(other FeatureVector) float64 {
	// Iterate the smaller map.
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		if ow, ok := b[term]; ok {
			sum += w * ow
		}
	}
	return sum
}

// Norm returns the Euclidean length of the vector.
func (v FeatureVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// normalize scales the vector to unit length in place. A zero vector is
// left untouched rather than divided by zero.
func (v FeatureVector) normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for term, w := range v {
		v[term] = w / norm
	}
}

// CorpusStats accumulates document frequencies during the first pass of
// an index build.
type CorpusStats struct {
	docCount int
	docFreq  map[string]int
}

// NewCorpusStats returns empty statistics.
func NewCorpusStats() *CorpusStats {
	return &CorpusStats{docFreq: make(map[string]int)}
}

// AddDocument counts one movie's distinct terms into the statistics.
func (s *CorpusStats) AddDocument(terms []string) {
	s.docCount++
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		s.docFreq[t]++
	}
}

// DocCount returns the number of documents counted.
func (s *CorpusStats) DocCount() int {
	return s.docCount
}

// DocFreq returns the number of documents containing term.
func (s *CorpusStats) DocFreq(term string) int {
	return s.docFreq[term]
}

// TermCount returns the vocabulary size.
func (s *CorpusStats) TermCount() int {
	return len(s.docFreq)
}

// idf returns the inverse document frequency of a term:
// ln(1 + N/df). Finite and strictly positive for every term that
// appears in at least one document, so no term weight can become
// negative, NaN or Inf.
func (s *CorpusStats) idf(term string) float64 {
	df := s.docFreq[term]
	if df < 1 {
		df = 1
	}
	return math.Log(1 + float64(s.docCount)/float64(df))
}

// FeatureExtractor turns a movie into a weighted term vector.
//
// Genre labels become one exact term each (trimmed, lowercased, and
// namespaced); multi-word labels like "Science Fiction" stay a single
// term. The overview is lowercased and split on non-alphanumeric runes.
// Term weights are tf * idf with genre terms multiplied by a boost
// greater than 1, and the final vector is L2-normalized.
type FeatureExtractor struct {
	genreBoost float64
}

// NewFeatureExtractor creates an extractor with the given genre boost.
func NewFeatureExtractor(genreBoost float64) *FeatureExtractor {
	return &FeatureExtractor{genreBoost: genreBoost}
}

// Terms returns every term occurrence of the movie, genres first. The
// slice may contain duplicates; callers count them for tf.
func (e *FeatureExtractor) Terms(m *Movie) []string {
	terms := make([]string, 0, len(m.Genres)+16)
	for _, g := range m.Genres {
		if t := genreTerm(g); t != genreTermPrefix {
			terms = append(terms, t)
		}
	}
	terms = append(terms, tokenizeOverview(m.Overview)...)
	return terms
}

// Extract computes the movie's normalized tf-idf vector against the
// given corpus statistics. A movie without genres and without overview
// words is featureless and yields the zero vector.
func (e *FeatureExtractor) Extract(m *Movie, stats *CorpusStats) FeatureVector {
	terms := e.Terms(m)
	if len(terms) == 0 {
		return FeatureVector{}
	}

	tf := make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}

	vec := make(FeatureVector, len(tf))
	for term, count := range tf {
		weight := float64(count) * stats.idf(term)
		if strings.HasPrefix(term, genreTermPrefix) {
			weight *= e.genreBoost
		}
		vec[term] = weight
	}

	vec.normalize()
	return vec
}

// genreTerm canonicalizes a genre label into its namespaced term.
func genreTerm(label string) string {
	return genreTermPrefix + strings.ToLower(strings.TrimSpace(label))
}

// tokenizeOverview lowercases the text and splits it on every rune that
// is neither letter nor digit. No stop-word list: determinism and
// simplicity over vocabulary pruning.
func tokenizeOverview(text string) []string {
	if text == "" {
		return nil
	}
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
