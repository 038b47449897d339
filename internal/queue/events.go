package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types for the activity stream
const (
	EventArtworkViewed  = "artwork_viewed"
	EventArtworkDeleted = "artwork_deleted"
)

// Stream names
const (
	StreamActivity = "stream:activity"
)

// Consumer group name for activity workers
const (
	ConsumerGroupActivity = "activity_workers"
)

// ActivityEvent represents an event published to the activity stream.
type ActivityEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // Unix timestamp when event occurred

	ArtworkID int64 `json:"artwork_id,omitempty"`
}

// NewArtworkViewedEvent creates an event for a single-artwork fetch.
// Workers bump the artwork's score in the trending ranking.
func NewArtworkViewedEvent(artworkID int64) ActivityEvent {
	return ActivityEvent{
		Type:      EventArtworkViewed,
		Timestamp: time.Now().Unix(),
		ArtworkID: artworkID,
	}
}

// NewArtworkDeletedEvent creates an event for an artwork removal.
// Workers drop the artwork from the trending ranking.
func NewArtworkDeletedEvent(artworkID int64) ActivityEvent {
	return ActivityEvent{
		Type:      EventArtworkDeleted,
		Timestamp: time.Now().Unix(),
		ArtworkID: artworkID,
	}
}

// ToMap converts the event to a map for Redis XADD.
// Redis Streams store field-value pairs, so we serialize to JSON in a "data" field.
func (e ActivityEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseActivityEvent parses an ActivityEvent from Redis stream message values.
func ParseActivityEvent(values map[string]interface{}) (ActivityEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return ActivityEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event ActivityEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return ActivityEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}
