package places

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/parkscout/parkscout/internal/fetch"
	"github.com/parkscout/parkscout/internal/park"
)

const (
	// SearchURL is the MapQuest radius-search endpoint.
	SearchURL = "http://www.mapquestapi.com/search/v2/radius"

	// maxResults caps how many places are returned, even if the API ignores
	// its maxMatches parameter.
	maxResults = 10
)

var (
	// ErrRemoteAPI reports an HTTP-level failure calling the places API.
	ErrRemoteAPI = errors.New("places API request failed")

	// ErrMalformedResponse reports that the API returned JSON missing the
	// keys the search contract promises.
	ErrMalformedResponse = errors.New("malformed places API response")
)

// Place is one point of interest near a site.
type Place struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// searchResponse mirrors the slice of the radius-search payload we consume.
// Pointer fields distinguish "key absent" from "empty value" so contract
// violations are detected rather than silently zeroed.
type searchResponse struct {
	SearchResults *[]rawResult `json:"searchResults"`
}

type rawResult struct {
	Fields *rawFields `json:"fields"`
}

type rawFields struct {
	Name     string `json:"name"`
	Category string `json:"group_sic_code_name_ext"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// Client queries the places API through the cached fetcher.
type Client struct {
	fetch  *fetch.Client
	apiKey string
	url    string
}

// New creates a Client. The API key is injected configuration; it is sent as
// a query parameter and never logged.
func New(client *fetch.Client, apiKey string) *Client {
	return &Client{fetch: client, apiKey: apiKey, url: SearchURL}
}

// Nearby returns up to ten points of interest near the site, ordered as the
// API returned them.
func (c *Client) Nearby(site *park.Site) ([]Place, error) {
	params := map[string]string{
		"key":         c.apiKey,
		"origin":      site.Zipcode,
		"radius":      "10",
		"maxMatches":  "10",
		"ambiguities": "ignore",
		"outFormat":   "json",
	}

	raw, err := c.fetch.JSON(c.url, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteAPI, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.SearchResults == nil {
		return nil, fmt.Errorf("%w: missing searchResults", ErrMalformedResponse)
	}

	results := *resp.SearchResults
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		if r.Fields == nil {
			return nil, fmt.Errorf("%w: result missing fields", ErrMalformedResponse)
		}
		places = append(places, Place{
			Name:     r.Fields.Name,
			Category: orPlaceholder(r.Fields.Category, "no category"),
			Address:  orPlaceholder(r.Fields.Address, "no address"),
			City:     orPlaceholder(r.Fields.City, "no city"),
		})
	}
	return places, nil
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
