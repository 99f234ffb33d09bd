// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package recommend implements content-based "more like this" ranking over a
// game catalog.
//
// # Pipeline
//
// Recommendations are produced in three pure steps:
//
//   - NewFeatureSpace collects the distinct genre labels of a catalog, sorted
//     lexicographically, and Encode turns every game into a binary vector over
//     that space (one column per label).
//   - ComputeSimilarity builds the N×N cosine similarity matrix of those
//     vectors. Games without any genre have a zero vector and score 0 against
//     everything, themselves included.
//   - Recommend ranks every other game against a reference game by similarity
//     descending, then critic score descending, then rank ascending, and keeps
//     the top K.
//
// # Engine
//
// Engine owns one immutable catalog, its feature space and its similarity
// matrix, all built once by NewEngine. RecommendByTitle and RecommendByIndex
// are safe for concurrent use; the only shared mutable state is the optional
// response cache and the request counters.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	if err != nil {
//		return err
//	}
//	resp, err := engine.RecommendByTitle(ctx, "Hades", 5)
//	for _, item := range resp.Items {
//		fmt.Println(item.Game.Title, item.PercentString())
//	}
//
// Determinism: identical catalogs always yield identical feature spaces,
// matrices and rankings. There is no randomness anywhere in the package.
package recommend
