package rules

// EventType identifies the external events a reaction ability can trigger on.
type EventType string

const (
	// EventAttacked fires for each opponent targeted by an attack effect.
	EventAttacked EventType = "ATTACKED"
	// EventArtifactDestroyed fires when a controlled artifact is destroyed.
	EventArtifactDestroyed EventType = "ARTIFACT_DESTROYED"
)
