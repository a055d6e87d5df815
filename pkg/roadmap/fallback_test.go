package roadmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssessment() AssessmentInput {
	return AssessmentInput{
		EducationLevel: "Bachelor's Degree",
		WorkExperience: "3-5 years",
		CurrentRole:    "Financial Analyst",
		TargetRole:     "Data Scientist",
		Industry:       "Technology",
		Skills:         []string{"Excel", "SQL"},
		TimelineMonths: 12,
		WeeklyHours:    15,
	}
}

func TestFallbackRoadmap_CuratedTemplate(t *testing.T) {
	d := fallbackRoadmap(testAssessment())

	assert.Equal(t, "Career Path: Financial Analyst to Data Scientist", d.Title)
	assert.Contains(t, d.Description, "12-month plan")
	require.GreaterOrEqual(t, len(d.Milestones), 5, "curated data scientist template should be rich")

	sum := 0
	for i, m := range d.Milestones {
		assert.NotEmpty(t, m.Title, "milestone %d title", i)
		assert.NotEmpty(t, m.Description, "milestone %d description", i)
		assert.Positive(t, m.EstimatedHours, "milestone %d hours", i)
		assert.NotEmpty(t, m.Resources, "milestone %d resources", i)
		sum += m.EstimatedHours
	}
	require.NotNil(t, d.TotalEstimatedHours)
	assert.Equal(t, sum, *d.TotalEstimatedHours)
}

func TestFallbackRoadmap_KeyNormalization(t *testing.T) {
	a := testAssessment()
	a.Industry = "  TECHNOLOGY "
	a.TargetRole = "data SCIENTIST"

	baseline := fallbackRoadmap(testAssessment())
	d := fallbackRoadmap(a)

	require.Equal(t, len(baseline.Milestones), len(d.Milestones))
	assert.Equal(t, baseline.Milestones[0].Title, d.Milestones[0].Title)
}

func TestFallbackRoadmap_GenericTemplate(t *testing.T) {
	a := AssessmentInput{
		EducationLevel: "Master's Degree",
		WorkExperience: "0-1 years",
		TargetRole:     "Marine Biologist",
		Industry:       "Oceanography",
		TimelineMonths: 18,
		WeeklyHours:    10,
	}
	d := fallbackRoadmap(a)

	assert.Equal(t, "Career Path: Getting Started to Marine Biologist", d.Title)
	require.Len(t, d.Milestones, 3)

	sum := 0
	for i, m := range d.Milestones {
		assert.Contains(t, m.Title, "Marine Biologist", "milestone %d should name the target role", i)
		assert.Positive(t, m.EstimatedHours)
		assert.NotEmpty(t, m.Resources)
		sum += m.EstimatedHours
	}
	require.NotNil(t, d.TotalEstimatedHours)
	assert.Equal(t, sum, *d.TotalEstimatedHours)
}

func TestCuratedCatalog_WellFormed(t *testing.T) {
	require.NotEmpty(t, curated)
	for key, ms := range curated {
		assert.Equal(t, strings.ToLower(key), key, "catalog keys are normalized lowercase")
		assert.Contains(t, key, "|")
		require.NotEmpty(t, ms, "template %s", key)
		for i, m := range ms {
			assert.NotEmpty(t, m.Title, "%s milestone %d", key, i)
			assert.NotEmpty(t, m.Description, "%s milestone %d", key, i)
			assert.Positive(t, m.EstimatedHours, "%s milestone %d", key, i)
			require.NotEmpty(t, m.Resources, "%s milestone %d", key, i)
			for j, r := range m.Resources {
				assert.NotEmpty(t, r.Title, "%s milestone %d resource %d", key, i, j)
			}
		}
	}
}
