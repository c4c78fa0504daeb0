package entities

// Snapshot is one consistent read of the four survey collections
type Snapshot struct {
	Questions []*Question
	Stalls    []*Stall
	Users     []*User
	Responses []*Response
}

// StallFilter restricts aggregation to responses given at a set of stalls.
// Matching is exact; callers normalize ids before building the filter.
type StallFilter struct {
	ids   map[string]struct{}
	order []string
}

// NewStallFilter builds a filter over stallIDs. An empty list yields a filter
// that matches nothing.
func NewStallFilter(stallIDs []string) *StallFilter {
	f := &StallFilter{ids: make(map[string]struct{}, len(stallIDs))}
	for _, id := range stallIDs {
		if _, ok := f.ids[id]; ok {
			continue
		}
		f.ids[id] = struct{}{}
		f.order = append(f.order, id)
	}
	return f
}

// Contains reports whether stallID is in the filter
func (f *StallFilter) Contains(stallID string) bool {
	if f == nil {
		return true
	}
	_, ok := f.ids[stallID]
	return ok
}

// IDs returns the filter's stall ids in insertion order
func (f *StallFilter) IDs() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.order...)
}

// DailyCount is one point of the responses-per-day histogram
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StallCount is a stall ranked by response count
type StallCount struct {
	StallID string `json:"stall_id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// QuestionCount is a question ranked by response count
type QuestionCount struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Count      int    `json:"count"`
}

// OptionCount is the tally of one answer value. Orphan marks values that are
// not among the question's declared options.
type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
	Orphan bool   `json:"orphan,omitempty"`
}

// QuestionBreakdown is the per-option answer distribution of one question
type QuestionBreakdown struct {
	QuestionID string        `json:"question_id"`
	Text       string        `json:"text"`
	Total      int           `json:"total"`
	Options    []OptionCount `json:"options"`
}

// Statistics is the aggregated dashboard view of a snapshot
type Statistics struct {
	GeneratedAt string `json:"generated_at"`
	Scoped      bool   `json:"scoped"`

	TotalQuestions int `json:"total_questions"`
	TotalStalls    int `json:"total_stalls"`
	TotalResponses int `json:"total_responses"`

	ResponsesToday    int          `json:"responses_today"`
	ResponsesThisWeek int          `json:"responses_this_week"`
	NewUsers          int          `json:"new_users"`
	ResponsesPerDay   []DailyCount `json:"responses_per_day"`

	ResponseCountByStall  map[string]int `json:"response_count_by_stall"`
	ResponsesWithoutStall int            `json:"responses_without_stall"`
	UnknownStallResponses int            `json:"unknown_stall_responses"`
	ActiveStallsToday     []string       `json:"active_stalls_today"`
	TopStalls             []StallCount   `json:"top_stalls"`

	ResponseCountByQuestion     map[string]int  `json:"response_count_by_question"`
	UnknownQuestionResponses    int             `json:"unknown_question_responses"`
	AverageResponsesPerQuestion float64         `json:"average_responses_per_question"`
	TopQuestions                []QuestionCount `json:"top_questions"`
	BottomQuestions             []QuestionCount `json:"bottom_questions"`
	// BottomOverlapsTop is set when every bottom question also appears in the
	// top list, so a client can skip rendering a repeated list.
	BottomOverlapsTop bool `json:"bottom_overlaps_top"`

	AnswerBreakdown []QuestionBreakdown `json:"answer_breakdown"`
}
