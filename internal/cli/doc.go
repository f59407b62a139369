// Package cli implements the command-line interface for parkscout.
//
// The root command starts the interactive shell. Two subcommands expose the
// same core non-interactively: "states" prints the state directory and
// "sites" prints every site record for one state, in text or JSON. The cli
// package owns all wiring: config loading, the cache handle, the cached
// fetcher, and the scraper and places clients built on top of it.
package cli
