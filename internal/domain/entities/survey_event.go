package entities

import (
	"time"

	"github.com/google/uuid"
)

// SurveyEventType represents the type of survey event
type SurveyEventType string

const (
	SurveyEventTypeResponseSubmitted SurveyEventType = "response.submitted"
	SurveyEventTypeQuestionCreated   SurveyEventType = "question.created"
	SurveyEventTypeQuestionDeleted   SurveyEventType = "question.deleted"
	SurveyEventTypeStallRegistered   SurveyEventType = "stall.registered"
)

// SurveyEvent announces a write that changes dashboard results
type SurveyEvent struct {
	ID         string          `json:"id"`
	EventType  SurveyEventType `json:"event_type"`
	QuestionID string          `json:"question_id,omitempty"`
	StallID    string          `json:"stall_id,omitempty"`
	OwnerID    string          `json:"owner_id,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewSurveyEvent creates a new survey event stamped at the given time
func NewSurveyEvent(eventType SurveyEventType, at time.Time) *SurveyEvent {
	return &SurveyEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		Timestamp: at,
	}
}
