package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// ReviewRecordedType identifies events carrying a ReviewRecorded payload.
const ReviewRecordedType = "review.recorded"

// Event is an envelope for a typed JSON payload.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an Event of the given type with payload serialized as JSON.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ReviewRecorded describes one committed answer.
// FirstReviewOfDay is true when the word had not been answered earlier on
// the same UTC day.
type ReviewRecorded struct {
	UserID           uuid.UUID           `json:"user_id"`
	WordID           uuid.UUID           `json:"word_id"`
	Correct          bool                `json:"correct"`
	FirstReviewOfDay bool                `json:"first_review_of_day"`
	Record           domain.ReviewRecord `json:"record"`
	AnsweredAt       time.Time           `json:"answered_at"`
}

// NewReviewRecordedEvent wraps payload in an Event.
func NewReviewRecordedEvent(payload ReviewRecorded) (*Event, error) {
	return NewEvent(ReviewRecordedType, payload)
}

// EventHandler processes events. Handlers ignore types they do not know.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter publishes events to registered handlers.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
