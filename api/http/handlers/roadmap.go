package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/roadmap"
)

// HeaderRoadmapSource reports which pipeline produced a generated roadmap:
// "model" or "fallback".
const HeaderRoadmapSource = "X-Roadmap-Source"

type RoadmapHandler struct {
	useCase roadmap.UseCase
}

func NewRoadmapHandler(useCase roadmap.UseCase) *RoadmapHandler {
	return &RoadmapHandler{useCase: useCase}
}

// Generate builds a personalized roadmap from the assessment. Generation
// never fails outright; degraded output is flagged by the source header.
// @Summary Generate career roadmap
// @Tags    roadmaps
// @Accept  json
// @Produce json
// @Param   input body roadmap.AssessmentInput true "career assessment"
// @Security BearerAuth
// @Success 200 {object} roadmap.Roadmap
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /roadmaps/generate [post]
func (h *RoadmapHandler) Generate(c *fiber.Ctx) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var a roadmap.AssessmentInput
	if err := c.BodyParser(&a); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(a.TargetRole) == "" || strings.TrimSpace(a.Industry) == "" {
		return presenter.Error(c, http.StatusBadRequest, "target_role and industry are required")
	}
	if a.TimelineMonths <= 0 || a.WeeklyHours <= 0 {
		return presenter.Error(c, http.StatusBadRequest, "timeline_months and availability_hours_per_week must be positive")
	}

	res := h.useCase.Generate(c.Context(), ownerID, a)
	c.Set(HeaderRoadmapSource, string(res.Source))
	return presenter.JSON(c, http.StatusOK, res.Roadmap)
}

// Create saves a roadmap for the authenticated user.
// @Summary Save roadmap
// @Tags    roadmaps
// @Accept  json
// @Produce json
// @Param   input body roadmap.Roadmap true "roadmap to save"
// @Security BearerAuth
// @Success 201 {object} roadmap.Roadmap
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /roadmaps [post]
func (h *RoadmapHandler) Create(c *fiber.Ctx) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var rm roadmap.Roadmap
	if err := c.BodyParser(&rm); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(rm.Title) == "" || len(rm.Milestones) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "title and milestones are required")
	}
	saved, err := h.useCase.Save(c.Context(), ownerID, rm)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save roadmap")
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// List returns the user's roadmaps, newest first.
// @Summary List roadmaps
// @Tags    roadmaps
// @Produce json
// @Param   limit query int false "page size (default 50)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} roadmap.Roadmap
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /roadmaps [get]
func (h *RoadmapHandler) List(c *fiber.Ctx) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.useCase.List(c.Context(), ownerID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list roadmaps")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one roadmap; other users' roadmaps read as not found.
// @Summary Get roadmap
// @Tags    roadmaps
// @Produce json
// @Param   id path string true "roadmap id (UUID)"
// @Security BearerAuth
// @Success 200 {object} roadmap.Roadmap
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /roadmaps/{id} [get]
func (h *RoadmapHandler) Get(c *fiber.Ctx) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	rm, err := h.useCase.Get(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "roadmap not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load roadmap")
	}
	return presenter.JSON(c, http.StatusOK, rm)
}

type updateProgressRequest struct {
	MilestoneID string `json:"milestone_id"`
	Status      string `json:"status"`
}

// UpdateProgress moves a milestone to a new status.
// @Summary Update milestone progress
// @Tags    roadmaps
// @Accept  json
// @Produce json
// @Param   id path string true "roadmap id (UUID)"
// @Param   input body updateProgressRequest true "milestone id and new status"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /roadmaps/{id}/progress [put]
func (h *RoadmapHandler) UpdateProgress(c *fiber.Ctx) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req updateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.MilestoneID == "" {
		return presenter.Error(c, http.StatusBadRequest, "milestone_id is required")
	}

	progress, err := h.useCase.UpdateProgress(c.Context(), ownerID, c.Params("id"), req.MilestoneID, roadmap.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, roadmap.ErrInvalidStatus):
			return presenter.Error(c, http.StatusBadRequest, "status must be not_started, in_progress or completed")
		case errors.Is(err, roadmap.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "roadmap not found")
		case errors.Is(err, roadmap.ErrMilestoneNotFound):
			return presenter.Error(c, http.StatusNotFound, "milestone not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update progress")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":             true,
		"progress_percentage": progress,
	})
}
