package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/parkscout/parkscout/internal/park"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
}

// SitesResult holds the sites subcommand's output.
type SitesResult struct {
	State string       `json:"state"`
	Sites []*park.Site `json:"sites"`
}

// WriteStates writes the state directory, sorted by state name.
func WriteStates(w io.Writer, directory map[string]string, format OutputFormat) error {
	names := make([]string, 0, len(directory))
	for name := range directory {
		names = append(names, name)
	}
	sort.Strings(names)

	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(directory)
	}

	for _, name := range names {
		fmt.Fprintf(w, "%-30s %s\n", name, directory[name])
	}
	return nil
}

// WriteSites writes one state's site records.
func WriteSites(w io.Writer, result *SitesResult, format OutputFormat) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if len(result.Sites) == 0 {
		fmt.Fprintf(w, "No sites found in %s.\n", result.State)
		return nil
	}
	for i, site := range result.Sites {
		fmt.Fprintf(w, "[ %d ] %s\n", i+1, site.Info())
	}
	fmt.Fprintf(w, "\nTotal: %d sites in %s\n", len(result.Sites), result.State)
	return nil
}
