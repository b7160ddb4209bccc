// Package config loads the service configuration from an optional YAML
// file, an optional .env file and VOCAB_* environment variables, applies
// defaults and validates the result.
package config
