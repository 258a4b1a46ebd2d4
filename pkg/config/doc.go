// Package config provides configuration loading, validation, and default
// management for Mercator Themis.
//
// Configuration comes from an optional YAML file overlaid with THEMIS_*
// environment variables; environment values always win. Backend credentials
// are read from the environment only and never appear in the file or in
// serialized output.
package config
