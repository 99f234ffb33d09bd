// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"github.com/tomtom215/gamescout/internal/catalog"
)

// FeatureSpace is the ordered set of distinct, non-empty genre labels
// observed across a catalog. Column j of every feature vector corresponds
// to Labels()[j].
type FeatureSpace struct {
	labels []string
	index  map[string]int
}

// NewFeatureSpace derives the feature space of cat. Labels are sorted
// lexicographically (byte order), so the column order does not depend on
// row order.
func NewFeatureSpace(cat *catalog.Catalog) *FeatureSpace {
	labels := cat.Genres()

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	return &FeatureSpace{labels: labels, index: index}
}

// Len returns the number of columns.
func (s *FeatureSpace) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the ordered labels.
func (s *FeatureSpace) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Vector encodes a single game. Labels outside the space and empty slots
// are ignored; repeated labels set the same column once.
func (s *FeatureSpace) Vector(g *catalog.Game) []uint8 {
	v := make([]uint8, len(s.labels))
	for _, label := range g.Genres {
		if j, ok := s.index[label]; ok {
			v[j] = 1
		}
	}
	return v
}

// Encode returns one binary row per catalog game, in catalog order.
func (s *FeatureSpace) Encode(cat *catalog.Catalog) [][]uint8 {
	games := cat.Games()
	rows := make([][]uint8, len(games))
	for i := range games {
		rows[i] = s.Vector(&games[i])
	}
	return rows
}
