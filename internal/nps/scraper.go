package nps

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/parkscout/parkscout/internal/fetch"
	"github.com/parkscout/parkscout/internal/park"
)

const (
	// BaseURL is the origin all relative nps.gov links resolve against.
	BaseURL = "https://www.nps.gov"
)

// ErrStructureChanged reports that an expected region of the page markup is
// missing, which means nps.gov changed its template and the selectors here
// need updating. It is not retried.
var ErrStructureChanged = errors.New("unexpected page structure")

// Scraper fetches and parses nps.gov pages through a cached fetcher.
type Scraper struct {
	fetch *fetch.Client
}

// New creates a Scraper that routes all page fetches through client.
func New(client *fetch.Client) *Scraper {
	return &Scraper{fetch: client}
}

// StateDirectory builds a mapping from lower-cased state name to the absolute
// URL of that state's listing page, from the front page's state dropdown.
func (s *Scraper) StateDirectory() (map[string]string, error) {
	body, err := s.fetch.Page(BaseURL)
	if err != nil {
		return nil, err
	}
	return parseStateDirectory(strings.NewReader(body))
}

// parseStateDirectory extracts the state dropdown from front-page HTML.
func parseStateDirectory(r io.Reader) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	dropdown := doc.Find(".dropdown-menu.SearchBar-keywordSearch")
	if dropdown.Length() == 0 {
		return nil, fmt.Errorf("%w: state dropdown not found", ErrStructureChanged)
	}

	directory := make(map[string]string)
	dropdown.Find("li a").Each(func(i int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		name := strings.ToLower(strings.TrimSpace(a.Text()))
		if name == "" {
			return
		}
		directory[name] = BaseURL + href
	})

	if len(directory) == 0 {
		return nil, fmt.Errorf("%w: state dropdown has no entries", ErrStructureChanged)
	}
	return directory, nil
}

// SitesForState enumerates the detail-page URLs of every site on a state
// listing page, in document order.
func (s *Scraper) SitesForState(stateURL string) ([]string, error) {
	body, err := s.fetch.Page(stateURL)
	if err != nil {
		return nil, err
	}
	return parseStateListing(strings.NewReader(body))
}

// parseStateListing extracts detail-page links from the park list results
// region. Listing hrefs are park root paths like "/isro/"; the site's detail
// pages live at <root>index.htm.
func parseStateListing(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	results := doc.Find("#parkListResultsArea")
	if results.Length() == 0 {
		return nil, fmt.Errorf("%w: park list results area not found", ErrStructureChanged)
	}

	urls := make([]string, 0)
	results.Find("li.clearfix h3 a").Each(func(i int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		urls = append(urls, BaseURL+href+"index.htm")
	})
	return urls, nil
}

// SiteDetail fetches one detail page and extracts its Site record. Only the
// name is required; every other field falls back to an empty string when its
// markup element is absent, because the detail template is not applied
// uniformly across sites.
func (s *Scraper) SiteDetail(detailURL string) (*park.Site, error) {
	body, err := s.fetch.Page(detailURL)
	if err != nil {
		return nil, err
	}
	return parseSiteDetail(strings.NewReader(body))
}

// parseSiteDetail extracts a Site record from detail-page HTML.
func parseSiteDetail(r io.Reader) (*park.Site, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	name := strings.TrimSpace(doc.Find(".Hero-titleContainer a").First().Text())
	if name == "" {
		return nil, fmt.Errorf("%w: site title not found", ErrStructureChanged)
	}

	category := doc.Find(".Hero-designationContainer span.Hero-designation").First().Text()
	locality := strings.TrimSpace(doc.Find("span[itemprop='addressLocality']").First().Text())
	region := strings.TrimSpace(doc.Find("[itemprop='addressRegion']").First().Text())
	zipcode := doc.Find("[itemprop='postalCode']").First().Text()
	phone := doc.Find(".tel").First().Text()

	address := ""
	switch {
	case locality != "" && region != "":
		address = locality + ", " + region
	case locality != "":
		address = locality
	case region != "":
		address = region
	}

	return park.New(name, category, address, zipcode, phone), nil
}
