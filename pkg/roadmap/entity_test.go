package roadmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     float64
	}{
		{"no milestones", nil, 0},
		{"none completed", []Status{StatusNotStarted, StatusInProgress}, 0},
		{"one of four", []Status{StatusCompleted, StatusNotStarted, StatusNotStarted, StatusNotStarted}, 25},
		{"half", []Status{StatusCompleted, StatusCompleted, StatusInProgress, StatusNotStarted}, 50},
		{"all completed", []Status{StatusCompleted, StatusCompleted}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := Roadmap{}
			for _, s := range tt.statuses {
				rm.Milestones = append(rm.Milestones, Milestone{Status: s})
			}
			got := rm.RecomputeProgress()
			assert.InDelta(t, tt.want, got, 0.001)
			assert.InDelta(t, tt.want, rm.ProgressPercentage, 0.001)
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusNotStarted.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("done").Valid())
	assert.False(t, Status("").Valid())
}

func TestResourceJSON_RoundTrip(t *testing.T) {
	r := Resource{
		Title:    "Deep Learning Specialization",
		URL:      "https://www.coursera.org/specializations/deep-learning",
		Type:     "course",
		Provider: "Coursera",
		Extra:    map[string]string{"cost": "Paid", "rating": "4.9/5"},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Deep Learning Specialization", m["title"])
	assert.Equal(t, "Paid", m["cost"])
	assert.Equal(t, "4.9/5", m["rating"])

	var back Resource
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestResourceJSON_OmitsEmptyFixedFields(t *testing.T) {
	data, err := json.Marshal(Resource{Title: "Scoped portfolio project"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]any{"title": "Scoped portfolio project"}, m)
}
