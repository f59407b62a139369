// Package cache provides the request-identity key builder and a JSON
// file-backed store for previously fetched response bodies.
//
// The cache is a single flat JSON object mapping request-identity strings to
// raw response bodies. HTML pages are stored as JSON strings; API responses
// are stored as the JSON value the API returned. Entries never expire; the
// whole document is rewritten after every store. A missing or unreadable
// cache file degrades to an empty cache rather than an error, since the cache
// is advisory and must never block operation.
package cache
