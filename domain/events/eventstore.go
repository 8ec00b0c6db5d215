package events

import (
	"errors"
	"sync"
)

// ErrMissingSessionID is returned when appending an event that carries no session ID
var ErrMissingSessionID = errors.New("event has no session ID")

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(sessionID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
// Events live for the lifetime of the process only.
type InMemoryEventStore struct {
	events map[string][]Event
	order  []Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	sessionID := ExtractSessionID(event)
	if sessionID == "" {
		return ErrMissingSessionID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.events[sessionID] = append(s.events[sessionID], event)
	s.order = append(s.order, event)
	return nil
}

// LoadEvents retrieves all events for the given session, oldest first.
func (s *InMemoryEventStore) LoadEvents(sessionID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events, exists := s.events[sessionID]
	if !exists {
		return []Event{}, nil
	}

	// Make a copy so callers cannot mutate the log
	result := make([]Event, len(events))
	copy(result, events)
	return result, nil
}

// GetEvents returns every stored event in append order.
func (s *InMemoryEventStore) GetEvents() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]Event, len(s.order))
	copy(result, s.order)
	return result
}
