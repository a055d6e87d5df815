package roadmap

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/llm"
	"github.com/careerpathai/backend/pkg/metrics"
)

// Source records which path produced a roadmap.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Result pairs a generated roadmap with its provenance so callers can react
// to degraded (fallback) output without inspecting the content.
type Result struct {
	Roadmap Roadmap
	Source  Source
}

const defaultLLMTimeout = 45 * time.Second

// Generator runs the prompt, model call and parse steps, falling back to
// curated templates on any failure, and normalizes the survivor into a
// canonical Roadmap.
type Generator struct {
	chat      llm.ChatModel
	modelName string
	maxTokens int
	timeout   time.Duration
	log       *zap.Logger
}

// NewGenerator wires a chat model into the pipeline. A nil chat degrades
// every generation to the fallback path; timeout <= 0 selects the default.
func NewGenerator(chat llm.ChatModel, modelName string, maxTokens int, timeout time.Duration, log *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return &Generator{
		chat:      chat,
		modelName: modelName,
		maxTokens: maxTokens,
		timeout:   timeout,
		log:       log,
	}
}

// Generate produces a roadmap for the assessment. It never fails: transport
// errors, timeouts and malformed replies all select the fallback template.
func (g *Generator) Generate(ctx context.Context, a AssessmentInput, displayName string) Result {
	draft, source := g.draft(ctx, a, displayName)
	metrics.IncRoadmapGeneration(string(source))
	return Result{Roadmap: assemble(draft), Source: source}
}

func (g *Generator) draft(ctx context.Context, a AssessmentInput, displayName string) (modelRoadmap, Source) {
	raw, err := g.complete(ctx, a, displayName)
	if err != nil {
		g.log.Warn("model call failed, using fallback template",
			zap.String("reason", failureReason(err)),
			zap.String("target_role", a.TargetRole),
			zap.Error(err))
		return fallbackRoadmap(a), SourceFallback
	}
	draft, err := parseModelResponse(raw)
	if err != nil {
		g.log.Warn("model response rejected, using fallback template",
			zap.String("reason", failureReason(err)),
			zap.String("target_role", a.TargetRole),
			zap.Error(err))
		return fallbackRoadmap(a), SourceFallback
	}
	return draft, SourceModel
}

func (g *Generator) complete(ctx context.Context, a AssessmentInput, displayName string) (string, error) {
	if g.chat == nil {
		return "", llm.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.chat.Ask(ctx, llm.Request{
		System:    systemInstruction,
		Prompt:    userPrompt(a, displayName),
		Model:     g.modelName,
		MaxTokens: g.maxTokens,
	})
}

func failureReason(err error) string {
	var timeout *llm.TimeoutError
	var transport *llm.TransportError
	var malformed *MalformedResponseError
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return "not_configured"
	case errors.As(err, &timeout):
		return "timeout"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &malformed):
		return "malformed"
	}
	return "other"
}

// assemble stamps identity and tracking state onto a draft: fresh UUIDs,
// 1-based contiguous order, not_started status. The declared total is
// carried as-is even when milestone hours sum differently.
func assemble(d modelRoadmap) Roadmap {
	milestones := make([]Milestone, 0, len(d.Milestones))
	for i, m := range d.Milestones {
		resources := m.Resources
		if resources == nil {
			resources = []Resource{}
		}
		milestones = append(milestones, Milestone{
			ID:              uuid.NewString(),
			Title:           m.Title,
			Description:     m.Description,
			EstimatedHours:  m.EstimatedHours,
			MarketRelevance: m.MarketRelevance,
			Resources:       resources,
			Status:          StatusNotStarted,
			Order:           i + 1,
		})
	}
	total := 0
	if d.TotalEstimatedHours != nil {
		total = *d.TotalEstimatedHours
	}
	return Roadmap{
		ID:                  uuid.NewString(),
		Title:               d.Title,
		Description:         d.Description,
		MarketContext:       d.MarketContext,
		CurrentMarketSalary: d.CurrentMarketSalary,
		SuccessMetrics:      d.SuccessMetrics,
		Milestones:          milestones,
		TotalEstimatedHours: total,
		CreatedAt:           time.Now().UTC(),
	}
}
