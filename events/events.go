package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a committed change to an HR record
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Entity    string      `json:"entity"`
	Action    string      `json:"action"`
	EntityID  uint        `json:"entity_id"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// New builds an event of type "<entity>.<action>"
func New(entity, action string, entityID uint, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      entity + "." + action,
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher accepts events for asynchronous delivery. Publish must not block.
type Publisher interface {
	Publish(event Event)
}

// Sink delivers a single event to one destination
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}

// Nop discards every event
type Nop struct{}

func (Nop) Publish(Event) {}
