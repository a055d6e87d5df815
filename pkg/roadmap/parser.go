package roadmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedResponseError reports a model reply that could not be turned into
// a roadmap draft: no JSON object, a decode failure, or a missing required
// field.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "roadmap: malformed model response: " + e.Reason
}

// modelRoadmap and modelMilestone mirror the reply schema before IDs, status
// and ordering are stamped on. TotalEstimatedHours is a pointer so a missing
// field is distinguishable from an explicit zero.
type modelRoadmap struct {
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	MarketContext       string           `json:"market_context"`
	CurrentMarketSalary string           `json:"current_market_salary"`
	SuccessMetrics      string           `json:"success_metrics"`
	Milestones          []modelMilestone `json:"milestones"`
	TotalEstimatedHours *int             `json:"total_estimated_hours"`
}

type modelMilestone struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EstimatedHours  int        `json:"estimated_hours"`
	MarketRelevance string     `json:"market_relevance"`
	Resources       []Resource `json:"resources"`
}

// parseModelResponse extracts the first balanced JSON object from raw (models
// often wrap the payload in prose or code fences), decodes it, and enforces
// the required fields.
func parseModelResponse(raw string) (modelRoadmap, error) {
	candidate := extractObject(raw)
	var d modelRoadmap
	if err := json.Unmarshal([]byte(candidate), &d); err != nil {
		return modelRoadmap{}, &MalformedResponseError{Reason: "invalid JSON: " + err.Error()}
	}
	if strings.TrimSpace(d.Title) == "" {
		return modelRoadmap{}, &MalformedResponseError{Reason: `missing required field "title"`}
	}
	if strings.TrimSpace(d.Description) == "" {
		return modelRoadmap{}, &MalformedResponseError{Reason: `missing required field "description"`}
	}
	if len(d.Milestones) == 0 {
		return modelRoadmap{}, &MalformedResponseError{Reason: `missing required field "milestones"`}
	}
	if d.TotalEstimatedHours == nil {
		return modelRoadmap{}, &MalformedResponseError{Reason: `missing required field "total_estimated_hours"`}
	}
	for i := range d.Milestones {
		m := &d.Milestones[i]
		if strings.TrimSpace(m.Title) == "" {
			return modelRoadmap{}, &MalformedResponseError{Reason: fmt.Sprintf(`milestone %d: missing required field "title"`, i+1)}
		}
		if strings.TrimSpace(m.Description) == "" {
			return modelRoadmap{}, &MalformedResponseError{Reason: fmt.Sprintf(`milestone %d: missing required field "description"`, i+1)}
		}
		if m.EstimatedHours <= 0 {
			return modelRoadmap{}, &MalformedResponseError{Reason: fmt.Sprintf(`milestone %d: missing required field "estimated_hours"`, i+1)}
		}
		if m.Resources == nil {
			m.Resources = []Resource{}
		}
	}
	return d, nil
}

// extractObject returns the substring from the first '{' to its balanced
// closing '}', skipping braces inside JSON strings. When no balanced object
// exists the text from the first '{' onward is returned (an unbalanced tail
// fails decoding with a precise error); with no brace at all the whole text
// is returned.
func extractObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return raw
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return raw[start:]
}
