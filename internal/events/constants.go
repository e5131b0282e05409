package events

// Event type constants
const (
	EventTypeRolled          EventType = "rolled"
	EventTypeFollowUpApplied EventType = "follow_up_applied"
)

// Priority levels for listener order
const (
	PriorityLogging = 100
	PriorityDefault = 500
)
