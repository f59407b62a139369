// Package fetch wraps outbound HTTP GETs with the request cache.
//
// Every fetch first consults the cache: a hit returns the stored body with no
// network I/O, a miss performs exactly one GET, stores the body under the
// request identity, persists the cache, and returns the body. Failed fetches
// are never cached, so the next attempt retries the network.
package fetch
