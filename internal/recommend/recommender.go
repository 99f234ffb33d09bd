// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/tomtom215/gamescout/internal/catalog"
)

// DefaultK is the number of recommendations returned when k <= 0.
const DefaultK = 10

// Recommendation is one ranked game.
type Recommendation struct {
	// Game is a copy of the recommended catalog entry.
	Game catalog.Game `json:"game"`

	// Index is the game's position in the catalog.
	Index int `json:"index"`

	// Similarity is the raw cosine similarity to the reference, in [0, 1].
	Similarity float64 `json:"similarity"`

	// Percent is Similarity as a rounded integer percentage.
	Percent int `json:"percent"`
}

// PercentString renders the similarity for display, e.g. "87%".
func (r *Recommendation) PercentString() string {
	return strconv.Itoa(r.Percent) + "%"
}

// Percent converts a similarity to an integer percentage, rounding halves
// away from zero.
func Percent(similarity float64) int {
	return int(math.Round(similarity * 100))
}

// Recommend returns the top k games most similar to the game at ref.
//
// Candidates are every other game in the catalog. They are ordered by
// similarity descending, then score descending, then rank ascending, which
// is a total order because ranks are unique. k <= 0 means DefaultK; a k
// larger than the number of candidates returns them all.
//
// Errors: catalog.ErrInsufficientData when the catalog holds fewer than two
// games, catalog.ErrNotFound when ref is out of range.
func Recommend(cat *catalog.Catalog, matrix *SimilarityMatrix, ref, k int) ([]Recommendation, error) {
	n := cat.Len()
	if n < 2 {
		return nil, fmt.Errorf("catalog has %d games, need at least 2: %w", n, catalog.ErrInsufficientData)
	}
	if ref < 0 || ref >= n {
		return nil, fmt.Errorf("reference index %d: %w", ref, catalog.ErrNotFound)
	}
	if matrix.Len() != n {
		return nil, fmt.Errorf("similarity matrix covers %d games, catalog has %d", matrix.Len(), n)
	}
	if k <= 0 {
		k = DefaultK
	}

	candidates := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != ref {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ia, ib := candidates[a], candidates[b]
		sa, sb := matrix.At(ref, ia), matrix.At(ref, ib)
		if sa != sb {
			return sa > sb
		}
		if scoreA, scoreB := cat.ScoreAt(ia), cat.ScoreAt(ib); scoreA != scoreB {
			return scoreA > scoreB
		}
		return cat.RankAt(ia) < cat.RankAt(ib)
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]Recommendation, 0, len(candidates))
	for _, i := range candidates {
		g, err := cat.At(i)
		if err != nil {
			return nil, err
		}
		sim := matrix.At(ref, i)
		out = append(out, Recommendation{
			Game:       g,
			Index:      i,
			Similarity: sim,
			Percent:    Percent(sim),
		})
	}

	return out, nil
}
