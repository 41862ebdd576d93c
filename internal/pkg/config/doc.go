// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by ELECTRIFY_* environment
// variables (an optional .env file is loaded first) and validated before use.
package config
