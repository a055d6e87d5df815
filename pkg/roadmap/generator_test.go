package roadmap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/llm"
)

type fakeChat struct {
	reply string
	err   error
	last  llm.Request
}

func (f *fakeChat) Ask(_ context.Context, req llm.Request) (string, error) {
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerate_ModelPath(t *testing.T) {
	// The declared total disagrees with the milestone sum on purpose: the
	// model's figure is carried as-is.
	reply := strings.Replace(validReply, `"total_estimated_hours": 70`, `"total_estimated_hours": 75`, 1)
	chat := &fakeChat{reply: "Sure, here is the plan:\n" + reply}
	g := NewGenerator(chat, "claude-sonnet-4-20250514", 4096, time.Second, zap.NewNop())

	res := g.Generate(context.Background(), testAssessment(), "Alex Rivera")

	assert.Equal(t, SourceModel, res.Source)
	rm := res.Roadmap
	assert.Equal(t, "Career Path: Financial Analyst to Data Scientist", rm.Title)
	assert.Equal(t, 75, rm.TotalEstimatedHours)
	assert.NotEmpty(t, rm.ID)
	assert.False(t, rm.CreatedAt.IsZero())
	require.Len(t, rm.Milestones, 2)

	seen := map[string]bool{}
	for i, m := range rm.Milestones {
		assert.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID], "milestone IDs must be unique")
		seen[m.ID] = true
		assert.Equal(t, i+1, m.Order)
		assert.Equal(t, StatusNotStarted, m.Status)
		assert.NotNil(t, m.Resources)
	}
}

func TestGenerate_FreshIdentityPerCall(t *testing.T) {
	chat := &fakeChat{reply: validReply}
	g := NewGenerator(chat, "claude-sonnet-4-20250514", 4096, time.Second, zap.NewNop())

	first := g.Generate(context.Background(), testAssessment(), "Alex Rivera").Roadmap
	second := g.Generate(context.Background(), testAssessment(), "Alex Rivera").Roadmap

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, second.Milestones, len(first.Milestones))
	for i := range first.Milestones {
		assert.NotEqual(t, first.Milestones[i].ID, second.Milestones[i].ID)
	}
}

func TestGenerate_TransportErrorFallsBack(t *testing.T) {
	chat := &fakeChat{err: &llm.TransportError{Status: 500, Detail: "overloaded"}}
	g := NewGenerator(chat, "claude-sonnet-4-20250514", 4096, time.Second, zap.NewNop())

	res := g.Generate(context.Background(), testAssessment(), "Alex Rivera")

	assert.Equal(t, SourceFallback, res.Source)
	require.NotEmpty(t, res.Roadmap.Milestones)
	sum := 0
	for _, m := range res.Roadmap.Milestones {
		sum += m.EstimatedHours
	}
	assert.Equal(t, sum, res.Roadmap.TotalEstimatedHours)
}

func TestGenerate_MalformedReplyFallsBack(t *testing.T) {
	chat := &fakeChat{reply: "I am sorry, I cannot help with that."}
	g := NewGenerator(chat, "claude-sonnet-4-20250514", 4096, time.Second, zap.NewNop())

	res := g.Generate(context.Background(), testAssessment(), "Alex Rivera")

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, "Career Path: Financial Analyst to Data Scientist", res.Roadmap.Title)
}

func TestGenerate_NilChatFallsBack(t *testing.T) {
	g := NewGenerator(nil, "", 0, 0, zap.NewNop())

	res := g.Generate(context.Background(), testAssessment(), "Alex Rivera")

	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Roadmap.Milestones)
	assert.Equal(t, defaultLLMTimeout, g.timeout)
}

func TestGenerate_PromptCarriesAssessment(t *testing.T) {
	chat := &fakeChat{reply: validReply}
	g := NewGenerator(chat, "claude-sonnet-4-20250514", 4096, time.Second, zap.NewNop())

	g.Generate(context.Background(), testAssessment(), "Alex Rivera")

	req := chat.last
	assert.Equal(t, "claude-sonnet-4-20250514", req.Model)
	assert.Equal(t, 4096, req.MaxTokens)
	assert.Contains(t, req.System, "ONLY with a single valid JSON object")

	for _, want := range []string{
		"Alex Rivera",
		"Data Scientist",
		"Technology",
		"Bachelor's Degree",
		"3-5 years",
		"Financial Analyst",
		"Excel, SQL",
		"Timeline: 12 months",
		"Available Hours per Week: 15",
	} {
		assert.Contains(t, req.Prompt, want)
	}
}
