// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Swagger general API information for swag. Regenerate docs/ with:
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title Gamescout API
// @version 1.0
// @description Content-based video game recommendations and catalog search.
// @description
// @description ## Recommendations
// @description
// @description Similarity is the cosine of the multi-hot genre vectors of two games.
// @description Results are ordered by similarity, then score, then catalog rank.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
package main
