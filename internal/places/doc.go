// Package places queries the MapQuest radius-search API for points of
// interest near a national park site, keyed by the site's zip code.
//
// The API's nested JSON is decoded into a typed structure at the boundary;
// callers never see raw maps. Results are capped at ten entries and empty
// upstream fields are replaced with "no category" / "no address" / "no city"
// placeholders so listings always render completely.
package places
