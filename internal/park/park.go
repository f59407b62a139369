package park

import (
	"fmt"
	"strings"
)

// Site represents one national park site scraped from nps.gov.
type Site struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"` // designation, e.g. "National Park"; some sites have none
	Address  string `json:"address,omitempty"`  // "City, ST"
	Zipcode  string `json:"zipcode,omitempty"`  // "49931" or "82190-0168"
	Phone    string `json:"phone,omitempty"`
}

// New creates a Site, normalizing whitespace in every field. Zip codes have
// all internal spaces removed; phone numbers have embedded newlines removed.
func New(name, category, address, zipcode, phone string) *Site {
	return &Site{
		Name:     strings.TrimSpace(name),
		Category: strings.TrimSpace(category),
		Address:  strings.TrimSpace(address),
		Zipcode:  strings.ReplaceAll(strings.TrimSpace(zipcode), " ", ""),
		Phone:    strings.TrimSpace(strings.ReplaceAll(phone, "\n", "")),
	}
}

// Info renders the site as a one-line summary for listings, in the form
// "Name (Category): Address Zipcode".
func (s *Site) Info() string {
	return fmt.Sprintf("%s (%s): %s %s", s.Name, s.Category, s.Address, s.Zipcode)
}
