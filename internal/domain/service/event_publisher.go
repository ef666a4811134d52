package service

import (
	"context"
	"time"
)

// PlaybackEvent is emitted whenever a user starts playing a song. Downstream
// consumers (feed fan-out, analytics) subscribe to it; clearing presence does
// not emit an event.
type PlaybackEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    string    `json:"user_id"`
	SongID    string    `json:"song_id"`
	StartedAt time.Time `json:"started_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlaybackEvent publishes a playback event for async processing
	PublishPlaybackEvent(ctx context.Context, event *PlaybackEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
