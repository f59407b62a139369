// Package nps scrapes nps.gov for national park sites.
//
// Three scrapers cover the site's two-level structure: the front page's state
// dropdown yields a directory of state listing pages, each listing page yields
// detail-page URLs, and each detail page yields one park.Site record. All
// selector logic lives here, so a template change on nps.gov touches this
// package only.
package nps
