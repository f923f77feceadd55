// Package constants holds shared domain-level constant values.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider selectors.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)
