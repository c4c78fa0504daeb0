package services

import (
	"sort"
	"time"

	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

const (
	topStallsLimit       = 5
	topQuestionsLimit    = 5
	bottomQuestionsLimit = 3
	histogramDays        = 7
	dayKeyLayout         = "2006-01-02"
)

// AggregateResponses computes dashboard statistics over one snapshot.
//
// A nil filter aggregates every response (admin view). A non-nil filter keeps
// only responses whose stall id is in the filter and counts only the filter's
// stalls in TotalStalls (owner view).
//
// Time windows are taken relative to now: "today" starts at local midnight of
// now's location (inclusive) and "this week" is the rolling 7×24h window.
// Records with missing fields are left out of the metrics that need them and
// never abort the computation.
func AggregateResponses(snapshot entities.Snapshot, filter *entities.StallFilter, now time.Time) *entities.Statistics {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-histogramDays * 24 * time.Hour)

	stats := &entities.Statistics{
		GeneratedAt:             now.Format(time.RFC3339),
		Scoped:                  filter != nil,
		ResponseCountByStall:    make(map[string]int),
		ResponseCountByQuestion: make(map[string]int),
		ActiveStallsToday:       []string{},
		TopStalls:               []entities.StallCount{},
		TopQuestions:            []entities.QuestionCount{},
		BottomQuestions:         []entities.QuestionCount{},
		AnswerBreakdown:         []entities.QuestionBreakdown{},
	}

	questions := uniqueQuestions(snapshot.Questions)
	stalls := indexStalls(snapshot.Stalls)
	responses := filterResponses(snapshot.Responses, filter)

	stats.TotalQuestions = len(questions)
	stats.TotalStalls = countStalls(snapshot.Stalls, filter)
	stats.TotalResponses = len(responses)

	// Time windows
	perDay := make(map[string]int, histogramDays)
	for _, r := range responses {
		if r.SubmittedAt.IsZero() {
			continue
		}
		if !r.SubmittedAt.Before(startOfToday) {
			stats.ResponsesToday++
		}
		if !r.SubmittedAt.Before(weekStart) {
			stats.ResponsesThisWeek++
		}
		perDay[r.SubmittedAt.In(now.Location()).Format(dayKeyLayout)]++
	}

	stats.ResponsesPerDay = make([]entities.DailyCount, 0, histogramDays)
	for i := histogramDays - 1; i >= 0; i-- {
		key := startOfToday.AddDate(0, 0, -i).Format(dayKeyLayout)
		stats.ResponsesPerDay = append(stats.ResponsesPerDay, entities.DailyCount{Date: key, Count: perDay[key]})
	}

	for _, u := range snapshot.Users {
		if u == nil || u.CreatedAt.IsZero() {
			continue
		}
		if !u.CreatedAt.Before(weekStart) {
			stats.NewUsers++
		}
	}

	aggregateStalls(stats, responses, stalls, startOfToday)
	aggregateQuestions(stats, responses, questions)
	stats.AnswerBreakdown = answerBreakdown(responses, questions)

	return stats
}

func aggregateStalls(stats *entities.Statistics, responses []*entities.Response, stalls map[string]*entities.Stall, startOfToday time.Time) {
	var order []string
	activeToday := make(map[string]struct{})

	for _, r := range responses {
		if !r.HasStall() {
			stats.ResponsesWithoutStall++
			continue
		}
		if _, seen := stats.ResponseCountByStall[r.StallID]; !seen {
			order = append(order, r.StallID)
		}
		stats.ResponseCountByStall[r.StallID]++

		// Stall ids match exactly, like the filter. A response stored under
		// another casing of a registered id is an unknown stall.
		if _, known := stalls[r.StallID]; !known {
			stats.UnknownStallResponses++
		}
		if !r.SubmittedAt.IsZero() && !r.SubmittedAt.Before(startOfToday) {
			activeToday[r.StallID] = struct{}{}
		}
	}

	for id := range activeToday {
		stats.ActiveStallsToday = append(stats.ActiveStallsToday, id)
	}
	sort.Strings(stats.ActiveStallsToday)

	ranked := make([]entities.StallCount, 0, len(order))
	for _, id := range order {
		name := id
		if s, ok := stalls[id]; ok {
			name = s.DisplayName()
		}
		ranked = append(ranked, entities.StallCount{StallID: id, Name: name, Count: stats.ResponseCountByStall[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	stats.TopStalls = append(stats.TopStalls, ranked[:min(topStallsLimit, len(ranked))]...)
}

func aggregateQuestions(stats *entities.Statistics, responses []*entities.Response, questions []*entities.Question) {
	for _, q := range questions {
		stats.ResponseCountByQuestion[q.ID] = 0
	}

	for _, r := range responses {
		if _, known := stats.ResponseCountByQuestion[r.QuestionID]; !known || r.QuestionID == "" {
			stats.UnknownQuestionResponses++
			continue
		}
		stats.ResponseCountByQuestion[r.QuestionID]++
	}

	if stats.TotalQuestions > 0 {
		stats.AverageResponsesPerQuestion = float64(stats.TotalResponses) / float64(stats.TotalQuestions)
	}

	ranked := make([]entities.QuestionCount, 0, len(questions))
	for _, q := range questions {
		ranked = append(ranked, entities.QuestionCount{QuestionID: q.ID, Text: q.Text, Count: stats.ResponseCountByQuestion[q.ID]})
	}

	top := append([]entities.QuestionCount(nil), ranked...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	stats.TopQuestions = append(stats.TopQuestions, top[:min(topQuestionsLimit, len(top))]...)

	bottom := append([]entities.QuestionCount(nil), ranked...)
	sort.SliceStable(bottom, func(i, j int) bool { return bottom[i].Count < bottom[j].Count })
	stats.BottomQuestions = append(stats.BottomQuestions, bottom[:min(bottomQuestionsLimit, len(bottom))]...)

	stats.BottomOverlapsTop = len(stats.BottomQuestions) > 0
	inTop := make(map[string]struct{}, len(stats.TopQuestions))
	for _, q := range stats.TopQuestions {
		inTop[q.QuestionID] = struct{}{}
	}
	for _, q := range stats.BottomQuestions {
		if _, ok := inTop[q.QuestionID]; !ok {
			stats.BottomOverlapsTop = false
			break
		}
	}
}

func answerBreakdown(responses []*entities.Response, questions []*entities.Question) []entities.QuestionBreakdown {
	byQuestion := make(map[string][]*entities.Response, len(questions))
	for _, r := range responses {
		if r.QuestionID == "" || r.Answer == "" {
			continue
		}
		byQuestion[r.QuestionID] = append(byQuestion[r.QuestionID], r)
	}

	out := make([]entities.QuestionBreakdown, 0, len(questions))
	for _, q := range questions {
		breakdown := entities.QuestionBreakdown{QuestionID: q.ID, Text: q.Text, Options: []entities.OptionCount{}}
		position := make(map[string]int, len(q.Options))

		for _, opt := range q.Options {
			if _, dup := position[opt]; dup {
				continue
			}
			position[opt] = len(breakdown.Options)
			breakdown.Options = append(breakdown.Options, entities.OptionCount{Option: opt})
		}

		for _, r := range byQuestion[q.ID] {
			idx, ok := position[r.Answer]
			if !ok {
				idx = len(breakdown.Options)
				position[r.Answer] = idx
				breakdown.Options = append(breakdown.Options, entities.OptionCount{Option: r.Answer, Orphan: true})
			}
			breakdown.Options[idx].Count++
			breakdown.Total++
		}

		out = append(out, breakdown)
	}
	return out
}

func uniqueQuestions(questions []*entities.Question) []*entities.Question {
	seen := make(map[string]struct{}, len(questions))
	out := make([]*entities.Question, 0, len(questions))
	for _, q := range questions {
		if q == nil || q.ID == "" {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		out = append(out, q)
	}
	return out
}

func indexStalls(stalls []*entities.Stall) map[string]*entities.Stall {
	index := make(map[string]*entities.Stall, len(stalls))
	for _, s := range stalls {
		if s == nil || s.StallID == "" {
			continue
		}
		if _, dup := index[s.StallID]; !dup {
			index[s.StallID] = s
		}
	}
	return index
}

func countStalls(stalls []*entities.Stall, filter *entities.StallFilter) int {
	seen := make(map[string]struct{}, len(stalls))
	for _, s := range stalls {
		if s == nil || s.StallID == "" || !filter.Contains(s.StallID) {
			continue
		}
		seen[s.StallID] = struct{}{}
	}
	return len(seen)
}

func filterResponses(responses []*entities.Response, filter *entities.StallFilter) []*entities.Response {
	out := make([]*entities.Response, 0, len(responses))
	for _, r := range responses {
		if r == nil || !filter.Contains(r.StallID) {
			continue
		}
		out = append(out, r)
	}
	return out
}
