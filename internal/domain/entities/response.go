package entities

import "time"

// Response is one user's answer to one question.
// StallID is empty when the answer was given outside any stall, and a zero
// SubmittedAt means the timestamp is missing.
type Response struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	QuestionID  string    `json:"question_id" db:"question_id"`
	StallID     string    `json:"stall_id,omitempty" db:"stall_id"`
	Answer      string    `json:"answer" db:"answer"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}

// HasStall reports whether the response was given in a stall context
func (r *Response) HasStall() bool {
	return r.StallID != ""
}
