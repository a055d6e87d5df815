package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/auth"
	"github.com/careerpathai/backend/pkg/user"
)

type AuthHandler struct {
	useCase auth.UseCase
}

func NewAuthHandler(useCase auth.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.FullName) == "" {
		return presenter.Error(c, http.StatusBadRequest, "email, password and full_name are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "email already registered")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "email, password and full_name are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Me returns the authenticated account.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	u, err := h.useCase.Me(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load user")
	}
	return presenter.JSON(c, http.StatusOK, u)
}

type updateProfileRequest struct {
	FullName       string   `json:"full_name"`
	Bio            string   `json:"bio"`
	CurrentRole    string   `json:"current_role"`
	TargetRole     string   `json:"target_role"`
	Skills         []string `json:"skills"`
	EducationLevel string   `json:"education_level"`
	WorkExperience string   `json:"work_experience"`
	Industry       string   `json:"industry"`
}

// UpdateProfile merges a partial profile edit into the account.
// @Summary Update profile
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "fields to update; empty fields are left unchanged"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u, err := h.useCase.UpdateProfile(c.Context(), id, auth.ProfileUpdate{
		FullName:       req.FullName,
		Bio:            req.Bio,
		CurrentRole:    req.CurrentRole,
		TargetRole:     req.TargetRole,
		Skills:         req.Skills,
		EducationLevel: req.EducationLevel,
		WorkExperience: req.WorkExperience,
		Industry:       req.Industry,
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, u)
}

// UpdateSettings replaces notification and appearance settings.
// @Summary Update settings
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body user.Settings true "settings payload"
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/settings [put]
func (h *AuthHandler) UpdateSettings(c *fiber.Ctx) error {
	id, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req user.Settings
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u, err := h.useCase.UpdateSettings(c.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidSettings):
			return presenter.Error(c, http.StatusBadRequest, "invalid settings values")
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update settings")
		}
	}
	return presenter.JSON(c, http.StatusOK, u)
}
