package entities

import "time"

// QuestionScope decides which customers a question is shown to
type QuestionScope string

const (
	// QuestionScopeGlobal questions are shown to every customer
	QuestionScopeGlobal QuestionScope = "global"

	// QuestionScopeSpecific questions are shown only at their target stalls
	QuestionScopeSpecific QuestionScope = "specific"
)

// Valid reports whether s is a known scope
func (s QuestionScope) Valid() bool {
	return s == QuestionScopeGlobal || s == QuestionScopeSpecific
}

// Question is a multiple-choice survey question.
// TargetStalls is only meaningful when Scope is specific.
type Question struct {
	ID           string        `json:"id" db:"id"`
	Text         string        `json:"text" db:"text"`
	Options      []string      `json:"options" db:"options"`
	Scope        QuestionScope `json:"scope" db:"scope"`
	TargetStalls []string      `json:"target_stalls,omitempty" db:"target_stalls"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	Active       bool          `json:"active" db:"active"`
}

// HasRenderableOptions reports whether the question carries a usable option list
func (q *Question) HasRenderableOptions() bool {
	return q != nil && len(q.Options) > 0
}

// TargetsStall reports whether stallID is one of the question's target stalls.
// Both sides are compared in normalized form.
func (q *Question) TargetsStall(stallID string) bool {
	stallID = NormalizeStallID(stallID)
	if stallID == "" {
		return false
	}
	for _, target := range q.TargetStalls {
		if NormalizeStallID(target) == stallID {
			return true
		}
	}
	return false
}

// RenderType tells the client how an eligible question can be displayed
type RenderType string

const (
	RenderTypeChoice      RenderType = "choice"
	RenderTypeUnsupported RenderType = "unsupported"
)

// EligibleQuestion is a question selected for display, with its render type
type EligibleQuestion struct {
	*Question
	RenderType RenderType `json:"render_type"`
}
