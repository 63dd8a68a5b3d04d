// Package services provides internal service implementations for ghwire.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ortelius/ghwire/events/modules/webhooks"
	"github.com/ortelius/ghwire/model"
)

// DefaultEventCapacity is used when a store is created with a non-positive capacity.
const DefaultEventCapacity = 500

// EventFilter selects events from an EventStore. Zero fields match everything.
type EventFilter struct {
	Name       string
	Repository string
	Since      *model.DateTime
	Limit      int
}

func (f EventFilter) matches(e webhooks.Event) bool {
	if f.Name != "" && e.Name != f.Name {
		return false
	}
	if f.Repository != "" && (e.Repository == nil || e.Repository.FullName != f.Repository) {
		return false
	}
	if f.Since != nil && e.ReceivedAt.Before(*f.Since) {
		return false
	}
	return true
}

// EventStore keeps the most recent webhook events in memory. When full, the
// oldest event is evicted. It is safe for concurrent use.
type EventStore struct {
	mu     sync.RWMutex
	buf    []webhooks.Event
	next   int
	count  int
	byID   map[string]int
	closed bool
}

// NewEventStore returns a store holding up to capacity events.
func NewEventStore(capacity int) *EventStore {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return &EventStore{
		buf:  make([]webhooks.Event, capacity),
		byID: make(map[string]int, capacity),
	}
}

// Record implements webhooks.EventRecorder.
func (s *EventStore) Record(ctx context.Context, event webhooks.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.ID == "" {
		return fmt.Errorf("event has no id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("event store is closed")
	}
	if _, ok := s.byID[event.ID]; ok {
		return webhooks.ErrDuplicateDelivery
	}
	if s.count == len(s.buf) {
		delete(s.byID, s.buf[s.next].ID)
	} else {
		s.count++
	}
	s.buf[s.next] = event
	s.byID[event.ID] = s.next
	s.next = (s.next + 1) % len(s.buf)
	return nil
}

// List returns matching events, newest first.
func (s *EventStore) List(filter EventFilter) []webhooks.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []webhooks.Event{}
	for i := 0; i < s.count; i++ {
		idx := (s.next - 1 - i + len(s.buf)) % len(s.buf)
		e := s.buf[idx]
		if !filter.matches(e) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

// Get returns the event with the given id.
func (s *EventStore) Get(id string) (webhooks.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return webhooks.Event{}, false
	}
	return s.buf[idx], true
}

// Len returns the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Close rejects further writes. Stored events stay readable.
func (s *EventStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Ensure compile-time interface check
var _ webhooks.EventRecorder = (*EventStore)(nil)
