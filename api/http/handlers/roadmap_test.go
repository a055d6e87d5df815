package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpathai/backend/pkg/roadmap"
)

type fakeRoadmapUseCase struct {
	generated      roadmap.Result
	saved          roadmap.Roadmap
	got            roadmap.Roadmap
	getErr         error
	progress       float64
	progressErr    error
	lastAssessment roadmap.AssessmentInput
	lastStatus     roadmap.Status
}

func (f *fakeRoadmapUseCase) Generate(_ context.Context, _ uuid.UUID, a roadmap.AssessmentInput) roadmap.Result {
	f.lastAssessment = a
	return f.generated
}

func (f *fakeRoadmapUseCase) Save(_ context.Context, ownerID uuid.UUID, rm roadmap.Roadmap) (roadmap.Roadmap, error) {
	rm.ID = "saved"
	rm.UserID = ownerID.String()
	f.saved = rm
	return rm, nil
}

func (f *fakeRoadmapUseCase) List(_ context.Context, _ uuid.UUID, _, _ int) ([]roadmap.Roadmap, error) {
	return []roadmap.Roadmap{}, nil
}

func (f *fakeRoadmapUseCase) Get(_ context.Context, _ uuid.UUID, _ string) (roadmap.Roadmap, error) {
	return f.got, f.getErr
}

func (f *fakeRoadmapUseCase) UpdateProgress(_ context.Context, _ uuid.UUID, _, _ string, status roadmap.Status) (float64, error) {
	f.lastStatus = status
	return f.progress, f.progressErr
}

// stubAuth plays the JWT middleware's part: a fixed user id in locals.
func stubAuth(id uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", id.String())
		return c.Next()
	}
}

func newRoadmapApp(uc roadmap.UseCase, owner uuid.UUID) *fiber.App {
	app := fiber.New()
	h := NewRoadmapHandler(uc)
	g := app.Group("/api/v1/roadmaps", stubAuth(owner))
	g.Post("/generate", h.Generate)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Put("/:id/progress", h.UpdateProgress)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

const assessmentBody = `{
	"education_level": "Bachelor's Degree",
	"work_experience": "3-5 years",
	"current_role": "Financial Analyst",
	"target_role": "Data Scientist",
	"industry": "Technology",
	"skills": ["Excel", "SQL"],
	"timeline_months": 12,
	"availability_hours_per_week": 15
}`

func TestGenerateHandler(t *testing.T) {
	uc := &fakeRoadmapUseCase{generated: roadmap.Result{
		Roadmap: roadmap.Roadmap{ID: "rm-1", Title: "Career Path: Financial Analyst to Data Scientist"},
		Source:  roadmap.SourceFallback,
	}}
	app := newRoadmapApp(uc, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/roadmaps/generate", assessmentBody))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "fallback", resp.Header.Get(HeaderRoadmapSource))
	body := decodeBody(t, resp)
	assert.Equal(t, "Career Path: Financial Analyst to Data Scientist", body["title"])
	assert.Equal(t, "Data Scientist", uc.lastAssessment.TargetRole)
	assert.Equal(t, 15, uc.lastAssessment.WeeklyHours)
}

func TestGenerateHandler_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing target role", `{"industry": "Technology", "timeline_months": 12, "availability_hours_per_week": 15}`},
		{"missing industry", `{"target_role": "Data Scientist", "timeline_months": 12, "availability_hours_per_week": 15}`},
		{"zero timeline", `{"target_role": "Data Scientist", "industry": "Technology", "timeline_months": 0, "availability_hours_per_week": 15}`},
		{"not JSON", `target_role=Data+Scientist`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoadmapApp(&fakeRoadmapUseCase{}, uuid.New())
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/roadmaps/generate", tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGenerateHandler_Unauthenticated(t *testing.T) {
	app := fiber.New()
	h := NewRoadmapHandler(&fakeRoadmapUseCase{})
	app.Post("/api/v1/roadmaps/generate", h.Generate)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/roadmaps/generate", assessmentBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetHandler_NotFound(t *testing.T) {
	app := newRoadmapApp(&fakeRoadmapUseCase{getErr: roadmap.ErrNotFound}, uuid.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/roadmaps/rm-404", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "roadmap not found", decodeBody(t, resp)["message"])
}

func TestUpdateProgressHandler(t *testing.T) {
	uc := &fakeRoadmapUseCase{progress: 50}
	app := newRoadmapApp(uc, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/v1/roadmaps/rm-1/progress",
		`{"milestone_id": "m-1", "status": "completed"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.InDelta(t, 50, body["progress_percentage"].(float64), 0.001)
	assert.Equal(t, roadmap.StatusCompleted, uc.lastStatus)
}

func TestUpdateProgressHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid status", roadmap.ErrInvalidStatus, http.StatusBadRequest},
		{"unknown milestone", roadmap.ErrMilestoneNotFound, http.StatusNotFound},
		{"unknown roadmap", roadmap.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoadmapApp(&fakeRoadmapUseCase{progressErr: tt.err}, uuid.New())
			resp, err := app.Test(jsonRequest(http.MethodPut, "/api/v1/roadmaps/rm-1/progress",
				`{"milestone_id": "m-1", "status": "completed"}`))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCreateHandler_RequiresContent(t *testing.T) {
	app := newRoadmapApp(&fakeRoadmapUseCase{}, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/roadmaps/", `{"title": "", "milestones": []}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
