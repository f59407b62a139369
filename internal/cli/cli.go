package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parkscout/parkscout/internal/cache"
	"github.com/parkscout/parkscout/internal/config"
	"github.com/parkscout/parkscout/internal/fetch"
	"github.com/parkscout/parkscout/internal/logger"
	"github.com/parkscout/parkscout/internal/nps"
	"github.com/parkscout/parkscout/internal/places"
	"github.com/parkscout/parkscout/internal/shell"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagCacheFile string
	flagAPIKey    string
	flagFormat    string
	flagVerbose   bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parkscout",
		Short: "Explore US national park sites and nearby places",
		Long: `An interactive explorer for US national park sites.
Scrapes nps.gov for sites in a chosen state and looks up nearby
points of interest via the MapQuest places API. Responses are
cached on disk, so repeated lookups stay off the network.`,
		RunE: runShell,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&flagCacheFile, "cache-file", "", "Request cache file (default: "+config.DefaultCachePath()+")")
	cmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "MapQuest API key (or env: "+config.EnvAPIKey+")")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newStatesCmd())
	cmd.AddCommand(newSitesCmd())

	return cmd
}

// setup loads config, applies flag overrides, and builds the component stack.
// The returned cache handle should be closed when the command finishes.
func setup() (*cache.Cache, *nps.Scraper, *places.Client, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagCacheFile != "" {
		cfg.CacheFile = flagCacheFile
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if cfg.APIKey == "" {
		logger.Warn("no MapQuest API key configured; nearby-place lookups will fail", nil)
	}

	store := cache.Open(cfg.CacheFile)
	client := fetch.New(store)
	return store, nps.New(client), places.New(client, cfg.APIKey), nil
}

// runShell starts the interactive session on the root command.
func runShell(cmd *cobra.Command, args []string) error {
	store, scraper, placesClient, err := setup()
	if err != nil {
		return err
	}
	defer store.Close()

	return shell.New(os.Stdin, os.Stdout, scraper, placesClient).Run()
}

func newStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Print the directory of states and their listing URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			store, scraper, _, err := setup()
			if err != nil {
				return err
			}
			defer store.Close()

			directory, err := scraper.StateDirectory()
			if err != nil {
				return fmt.Errorf("building state directory: %w", err)
			}
			return WriteStates(os.Stdout, directory, format)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

func newSitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites <state>",
		Short: "Print every national park site in a state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			store, scraper, _, err := setup()
			if err != nil {
				return err
			}
			defer store.Close()

			state := strings.ToLower(strings.TrimSpace(args[0]))
			directory, err := scraper.StateDirectory()
			if err != nil {
				return fmt.Errorf("building state directory: %w", err)
			}
			stateURL, ok := directory[state]
			if !ok {
				return fmt.Errorf("unknown state: %s", args[0])
			}

			urls, err := scraper.SitesForState(stateURL)
			if err != nil {
				return fmt.Errorf("listing sites: %w", err)
			}
			result := &SitesResult{State: state}
			for _, u := range urls {
				site, err := scraper.SiteDetail(u)
				if err != nil {
					return fmt.Errorf("fetching site detail: %w", err)
				}
				result.Sites = append(result.Sites, site)
			}
			return WriteSites(os.Stdout, result, format)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
