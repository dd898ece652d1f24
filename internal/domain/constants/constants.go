package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the order topic
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)
