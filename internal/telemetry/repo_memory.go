package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores gameplay telemetry events.
type Repository interface {
	RecordEvent(session string, eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps events in memory with a bounded ring so a
// long-running server does not grow without limit.
type MemoryRepository struct {
	mu       sync.RWMutex
	events   []Event
	nextID   int
	capacity int
	clock    func() time.Time
}

const defaultCapacity = 10000

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events:   make([]Event, 0),
		nextID:   1,
		capacity: defaultCapacity,
		clock:    time.Now,
	}
}

// WithClock replaces the timestamp source, for tests.
func (r *MemoryRepository) WithClock(clock func() time.Time) *MemoryRepository {
	r.clock = clock
	return r
}

func (r *MemoryRepository) RecordEvent(session string, eventType EventType, metadata EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Session:   session,
		Timestamp: r.clock(),
		Metadata:  string(metadataJSON),
	})
	r.nextID++

	if len(r.events) > r.capacity {
		r.events = r.events[len(r.events)-r.capacity:]
	}
	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeFilter := make(map[EventType]bool)
	for _, t := range eventTypes {
		typeFilter[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(eventTypes) > 0 && !typeFilter[event.Type] {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = r.events[:0]
	return nil
}
