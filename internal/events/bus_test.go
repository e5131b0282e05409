package events_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/outgunned-bot/internal/domain/roll"
	"github.com/KirkDiggler/outgunned-bot/internal/events"
)

type recordingListener struct {
	id       string
	priority int
	err      error
	seen     *[]string
	mu       *sync.Mutex
}

func (l *recordingListener) ID() string    { return l.id }
func (l *recordingListener) Priority() int { return l.priority }

func (l *recordingListener) HandleEvent(events.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.seen = append(*l.seen, l.id)
	return l.err
}

func newRecorders(templates ...recordingListener) ([]*recordingListener, *[]string) {
	seen := &[]string{}
	mu := &sync.Mutex{}
	out := make([]*recordingListener, 0, len(templates))
	for _, tmpl := range templates {
		l := tmpl
		l.seen = seen
		l.mu = mu
		out = append(out, &l)
	}
	return out, seen
}

func rolled() *events.RollEvent {
	return &events.RollEvent{
		Type:   events.EventTypeRolled,
		Kind:   roll.KindRoll,
		Dice:   []int{3, 3, 1},
		Rights: roll.Rights{Reroll: true, FreeReroll: true, AllIn: true},
	}
}

func TestBus_PriorityOrder(t *testing.T) {
	bus := events.NewBus()
	listeners, seen := newRecorders(
		recordingListener{id: "late", priority: events.PriorityDefault},
		recordingListener{id: "early", priority: events.PriorityLogging},
	)
	for _, l := range listeners {
		bus.Subscribe(l, events.EventTypeRolled)
	}

	require.NoError(t, bus.Emit(rolled()))
	assert.Equal(t, []string{"early", "late"}, *seen)
}

func TestBus_OnlyMatchingType(t *testing.T) {
	bus := events.NewBus()
	listeners, seen := newRecorders(recordingListener{id: "follow-ups"})
	bus.Subscribe(listeners[0], events.EventTypeFollowUpApplied)

	require.NoError(t, bus.Emit(rolled()))
	assert.Empty(t, *seen)
}

func TestBus_FailingListenerDoesNotStopOthers(t *testing.T) {
	bus := events.NewBus()
	listeners, seen := newRecorders(
		recordingListener{id: "broken", priority: 1, err: errors.New("disk full")},
		recordingListener{id: "fine", priority: 2},
	)
	for _, l := range listeners {
		bus.Subscribe(l, events.EventTypeRolled)
	}

	err := bus.Emit(rolled())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, []string{"broken", "fine"}, *seen)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()
	listeners, seen := newRecorders(recordingListener{id: "a"}, recordingListener{id: "b"})
	for _, l := range listeners {
		bus.Subscribe(l, events.EventTypeRolled)
	}

	bus.Unsubscribe(events.EventTypeRolled, "a")
	require.NoError(t, bus.Emit(rolled()))
	assert.Equal(t, []string{"b"}, *seen)

	bus.Clear()
	require.NoError(t, bus.Emit(rolled()))
	assert.Equal(t, []string{"b"}, *seen)
}

func TestCounter(t *testing.T) {
	bus := events.NewBus()
	counter := events.NewCounter()
	bus.Subscribe(counter, events.EventTypeRolled, events.EventTypeFollowUpApplied)
	bus.Subscribe(events.LogListener{}, events.EventTypeRolled, events.EventTypeFollowUpApplied)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, bus.Emit(rolled()))
			assert.NoError(t, bus.Emit(&events.RollEvent{
				Type:   events.EventTypeFollowUpApplied,
				Kind:   roll.KindReroll,
				Before: []int{3, 3, 1},
				Dice:   []int{3, 3, 3},
			}))
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, counter.Count(events.EventTypeRolled))
	assert.Equal(t, 10, counter.Count(events.EventTypeFollowUpApplied))
}
