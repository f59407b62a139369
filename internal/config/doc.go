// Package config loads parkscout settings from a YAML file with environment
// overrides.
//
// The MapQuest API key is a secret: it is read from the config file or the
// MAPQUEST_API_KEY environment variable, never hard-coded, and never logged.
package config
