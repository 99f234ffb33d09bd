// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"math"
)

// SimilarityMatrix holds pairwise cosine similarities of N feature vectors.
// It is symmetric with every entry in [0, 1].
type SimilarityMatrix struct {
	n      int
	values []float64 // row-major n×n
}

// ComputeSimilarity returns the cosine similarity matrix of vectors.
//
// Entry (i, j) is dot(vi, vj) / sqrt(|vi|² · |vj|²). A zero vector scores 0
// against every vector including itself. Only the upper triangle is
// computed; the lower triangle is mirrored from it.
func ComputeSimilarity(vectors [][]uint8) *SimilarityMatrix {
	n := len(vectors)
	m := &SimilarityMatrix{n: n, values: make([]float64, n*n)}

	// Binary vectors: the squared norm is the count of set columns.
	norms := make([]int, n)
	for i, v := range vectors {
		for _, x := range v {
			norms[i] += int(x) * int(x)
		}
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sim := cosine(vectors[i], vectors[j], norms[i], norms[j])
			m.values[i*n+j] = sim
			m.values[j*n+i] = sim
		}
	}

	return m
}

func cosine(a, b []uint8, normA, normB int) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}

	dot := 0
	for k := 0; k < min(len(a), len(b)); k++ {
		dot += int(a[k]) * int(b[k])
	}
	if dot == 0 {
		return 0
	}

	sim := float64(dot) / math.Sqrt(float64(normA)*float64(normB))
	return min(max(sim, 0), 1)
}

// Len returns N.
func (m *SimilarityMatrix) Len() int {
	return m.n
}

// At returns the similarity of i and j. It panics when either index is out
// of range, like a slice access.
func (m *SimilarityMatrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic("recommend: similarity index out of range")
	}
	return m.values[i*m.n+j]
}
