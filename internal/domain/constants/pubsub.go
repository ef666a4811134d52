// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider identifiers used by the event publisher configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
