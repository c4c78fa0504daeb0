package services

import (
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

// SelectEligibleQuestions returns the questions a user should be shown.
//
// A question is eligible when it is global, or when it is specific and its
// target stalls contain stallContext. Questions whose id is in answered are
// removed and every question appears at most once, in input order. A specific
// question with no target stalls is never eligible.
//
// Questions without a usable option list are still returned, marked with
// RenderTypeUnsupported.
func SelectEligibleQuestions(questions []*entities.Question, answered map[string]struct{}, stallContext string) []entities.EligibleQuestion {
	stallContext = entities.NormalizeStallID(stallContext)

	out := make([]entities.EligibleQuestion, 0, len(questions))
	seen := make(map[string]struct{}, len(questions))

	for _, q := range questions {
		if q == nil {
			continue
		}
		if _, done := answered[q.ID]; done {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		if !inScope(q, stallContext) {
			continue
		}

		seen[q.ID] = struct{}{}
		out = append(out, entities.EligibleQuestion{
			Question:   q,
			RenderType: renderTypeOf(q),
		})
	}

	return out
}

// AnsweredQuestionIDs collects the question ids of a user's responses
func AnsweredQuestionIDs(responses []*entities.Response) map[string]struct{} {
	ids := make(map[string]struct{}, len(responses))
	for _, r := range responses {
		if r == nil || r.QuestionID == "" {
			continue
		}
		ids[r.QuestionID] = struct{}{}
	}
	return ids
}

func inScope(q *entities.Question, stallContext string) bool {
	switch q.Scope {
	case entities.QuestionScopeGlobal:
		return true
	case entities.QuestionScopeSpecific:
		return stallContext != "" && q.TargetsStall(stallContext)
	default:
		return false
	}
}

func renderTypeOf(q *entities.Question) entities.RenderType {
	if q.HasRenderableOptions() {
		return entities.RenderTypeChoice
	}
	return entities.RenderTypeUnsupported
}
