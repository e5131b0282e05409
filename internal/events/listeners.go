package events

import (
	"log"
	"sync"
)

// LogListener writes every roll event to the standard logger
type LogListener struct{}

func (LogListener) ID() string    { return "roll-log" }
func (LogListener) Priority() int { return PriorityLogging }

func (LogListener) HandleEvent(event Event) error {
	e, ok := event.(*RollEvent)
	if !ok {
		return nil
	}

	switch e.Type {
	case EventTypeRolled:
		log.Printf("[Roll] %dd6: %v rights: %+v", len(e.Dice), e.Dice, e.Rights)
	case EventTypeFollowUpApplied:
		log.Printf("[Roll] %s: %v -> %v rights: %+v", e.Kind, e.Before, e.Dice, e.Rights)
	}
	return nil
}

// Counter tallies events by type
type Counter struct {
	mu     sync.Mutex
	counts map[EventType]int
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[EventType]int)}
}

func (c *Counter) ID() string    { return "roll-counter" }
func (c *Counter) Priority() int { return PriorityDefault }

func (c *Counter) HandleEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[event.GetType()]++
	return nil
}

// Count returns how many events of eventType were seen
func (c *Counter) Count(eventType EventType) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counts[eventType]
}
