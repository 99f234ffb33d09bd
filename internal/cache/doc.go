// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiration.

The recommendation engine stores finished responses here, keyed by reference
and K, so repeated lookups for popular titles skip the ranking step. The
similarity matrix itself is never cached across runs; entries live only as
long as the process and their TTL.

# Usage

	c := cache.NewLRU[*recommend.Response](512, 10*time.Minute)
	c.Add("title:Alpha:k=10", resp)
	if cached, ok := c.Get("title:Alpha:k=10"); ok {
		return cached
	}

Expiration is lazy: Get drops an expired entry when it sees one.
*/
package cache
