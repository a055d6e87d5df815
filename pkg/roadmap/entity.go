package roadmap

import (
	"encoding/json"
	"time"
)

// Status of a single milestone.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// AssessmentInput is the immutable career-transition questionnaire driving a
// generation. Timeline and weekly hours must be positive; the API layer
// validates before calling in.
type AssessmentInput struct {
	EducationLevel string   `json:"education_level"`
	WorkExperience string   `json:"work_experience"`
	CurrentRole    string   `json:"current_role,omitempty"`
	TargetRole     string   `json:"target_role"`
	Industry       string   `json:"industry"`
	Skills         []string `json:"skills"`
	TimelineMonths int      `json:"timeline_months"`
	WeeklyHours    int      `json:"availability_hours_per_week"`
}

// Resource is a recommended learning artifact. Beyond the four fixed fields,
// models attach free-form metadata (cost, rating, author, duration, year);
// Extra preserves those keys so stored roadmaps round-trip unchanged.
type Resource struct {
	Title    string            `json:"title"`
	URL      string            `json:"url,omitempty"`
	Type     string            `json:"type,omitempty"` // course, book, certification, project, or provider-defined
	Provider string            `json:"provider,omitempty"`
	Extra    map[string]string `json:"-"`
}

func (r Resource) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(r.Extra)+4)
	for k, v := range r.Extra {
		m[k] = v
	}
	m["title"] = r.Title
	if r.URL != "" {
		m["url"] = r.URL
	}
	if r.Type != "" {
		m["type"] = r.Type
	}
	if r.Provider != "" {
		m["provider"] = r.Provider
	}
	return json.Marshal(m)
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	take := func(key string) string {
		v, ok := raw[key]
		if !ok {
			return ""
		}
		delete(raw, key)
		return rawToString(v)
	}
	r.Title = take("title")
	r.URL = take("url")
	r.Type = take("type")
	r.Provider = take("provider")
	r.Extra = nil
	if len(raw) > 0 {
		r.Extra = make(map[string]string, len(raw))
		for k, v := range raw {
			r.Extra[k] = rawToString(v)
		}
	}
	return nil
}

// rawToString flattens a JSON value to text: strings are decoded, anything
// else (numbers, booleans) keeps its literal form.
func rawToString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}

// Milestone is one step in a roadmap. Order is 1-based and contiguous within
// a roadmap; CompletedAt is set only on the transition into completed.
type Milestone struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EstimatedHours  int        `json:"estimated_hours"`
	MarketRelevance string     `json:"market_relevance,omitempty"`
	Resources       []Resource `json:"resources"`
	Status          Status     `json:"status"`
	Order           int        `json:"order"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// Roadmap is the aggregate. It is created without an owner by the generation
// pipeline; UserID is attached when the caller saves it.
type Roadmap struct {
	ID                  string      `json:"id"`
	UserID              string      `json:"user_id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	MarketContext       string      `json:"market_context,omitempty"`
	CurrentMarketSalary string      `json:"current_market_salary,omitempty"`
	SuccessMetrics      string      `json:"success_metrics,omitempty"`
	Milestones          []Milestone `json:"milestones"`
	TotalEstimatedHours int         `json:"total_estimated_hours"`
	CreatedAt           time.Time   `json:"created_at"`
	ProgressPercentage  float64     `json:"progress_percentage"`
}

// RecomputeProgress recalculates the derived percentage from milestone
// statuses and stores it on the roadmap.
func (r *Roadmap) RecomputeProgress() float64 {
	if len(r.Milestones) == 0 {
		r.ProgressPercentage = 0
		return 0
	}
	completed := 0
	for _, m := range r.Milestones {
		if m.Status == StatusCompleted {
			completed++
		}
	}
	r.ProgressPercentage = float64(completed) / float64(len(r.Milestones)) * 100
	return r.ProgressPercentage
}
