package events

import (
	"context"
	"time"
)

// Reloaded is published after a new customization becomes active.
type Reloaded struct {
	EventID    string    `json:"event_id"`
	InstanceID string    `json:"instance_id"`
	Version    uint64    `json:"version"`
	Title      string    `json:"title"`
	Tabs       []string  `json:"tabs"`
	Sources    []string  `json:"sources,omitempty"`
	At         time.Time `json:"at"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, subject string, event any) error
	Close() error
}
