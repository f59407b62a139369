// Package park defines the Site record produced by the nps scrapers.
//
// A Site describes a single national park site: its name, designation
// category, city/state address, zip code, and phone number. Only the name is
// guaranteed to be present; the source site does not apply its detail-page
// template uniformly, so every other field may be empty.
package park
