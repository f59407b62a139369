package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parkscout/parkscout/internal/nps"
	"github.com/parkscout/parkscout/internal/park"
	"github.com/parkscout/parkscout/internal/places"
)

const statePrompt = `Enter a state name (e.g. Michigan, michigan) or "exit"`

// Shell runs the interactive session over an input/output pair, so tests can
// drive it with scripted input.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	scraper *nps.Scraper
	places  *places.Client
}

// New creates a Shell reading commands from in and printing to out.
func New(in io.Reader, out io.Writer, scraper *nps.Scraper, placesClient *places.Client) *Shell {
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		scraper: scraper,
		places:  placesClient,
	}
}

// Run executes the session until the user exits or input ends. Only a failure
// to build the state directory is fatal; everything after that is reported at
// the prompt and the loop continues.
func (s *Shell) Run() error {
	directory, err := s.scraper.StateDirectory()
	if err != nil {
		return fmt.Errorf("building state directory: %w", err)
	}

	for {
		fmt.Fprintln(s.out, statePrompt)
		input, ok := s.prompt()
		if !ok {
			return nil
		}
		state := strings.ToLower(input)
		if state == "exit" {
			return nil
		}

		stateURL, known := directory[state]
		if !known {
			fmt.Fprintln(s.out, "[Error] Enter proper state name")
			fmt.Fprintln(s.out)
			continue
		}

		sites, err := s.loadSites(stateURL)
		if err != nil {
			fmt.Fprintf(s.out, "[Error] %v\n\n", err)
			continue
		}

		s.printSites(state, sites)

		if done := s.siteLoop(sites); done {
			return nil
		}
	}
}

// siteLoop handles number/"back"/"exit" selections for one state's listing.
// It reports true when the session should end.
func (s *Shell) siteLoop(sites []*park.Site) bool {
	for {
		fmt.Fprintln(s.out, `Choose a number for detail search, or "back" or "exit"`)
		input, ok := s.prompt()
		if !ok || input == "exit" {
			return true
		}
		if input == "back" {
			return false
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(sites) {
			fmt.Fprintln(s.out, "[Error] Invalid input")
			fmt.Fprintln(s.out)
			continue
		}

		site := sites[n-1]
		nearby, err := s.places.Nearby(site)
		if err != nil {
			fmt.Fprintf(s.out, "[Error] %v\n\n", err)
			continue
		}
		s.printNearby(site, nearby)
	}
}

// loadSites fetches every site record for a state, in listing order.
func (s *Shell) loadSites(stateURL string) ([]*park.Site, error) {
	urls, err := s.scraper.SitesForState(stateURL)
	if err != nil {
		return nil, err
	}
	sites := make([]*park.Site, 0, len(urls))
	for _, u := range urls {
		site, err := s.scraper.SiteDetail(u)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, nil
}

func (s *Shell) prompt() (string, bool) {
	fmt.Fprint(s.out, ": ")
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) printSites(state string, sites []*park.Site) {
	fmt.Fprintln(s.out, "-----------------------------------")
	fmt.Fprintf(s.out, "List of national sites in %s\n", state)
	fmt.Fprintln(s.out, "-----------------------------------")
	for i, site := range sites {
		fmt.Fprintf(s.out, "[ %d ] %s\n", i+1, site.Info())
	}
}

func (s *Shell) printNearby(site *park.Site, nearby []places.Place) {
	fmt.Fprintln(s.out, "-------------------------------------")
	fmt.Fprintf(s.out, "Places near %s\n", site.Name)
	fmt.Fprintln(s.out, "-------------------------------------")
	for _, p := range nearby {
		fmt.Fprintf(s.out, "- %s (%s): %s, %s\n", p.Name, p.Category, p.Address, p.City)
	}
	fmt.Fprintln(s.out, "-------------------------------------")
}
