package queue

import (
	"testing"
)

func TestActivityEvent_ToMapAndParse(t *testing.T) {
	event := NewArtworkViewedEvent(42)

	values, err := event.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}
	if values["type"] != EventArtworkViewed {
		t.Errorf("type field = %v, want %q", values["type"], EventArtworkViewed)
	}

	parsed, err := ParseActivityEvent(values)
	if err != nil {
		t.Fatalf("ParseActivityEvent: %v", err)
	}
	if parsed.Type != event.Type || parsed.ArtworkID != event.ArtworkID || parsed.Timestamp != event.Timestamp {
		t.Errorf("parsed = %+v, want %+v", parsed, event)
	}
}

func TestParseActivityEvent_MissingData(t *testing.T) {
	if _, err := ParseActivityEvent(map[string]interface{}{"type": EventArtworkViewed}); err == nil {
		t.Error("expected an error for a message without a data field")
	}
}

func TestParseActivityEvent_BadJSON(t *testing.T) {
	if _, err := ParseActivityEvent(map[string]interface{}{"data": "{not json"}); err == nil {
		t.Error("expected an error for malformed event data")
	}
}
