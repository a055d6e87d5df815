package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerpathai/backend/pkg/user"
)

// Errors surfaced to the transport layer.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSettings    = errors.New("invalid settings")
)

// UseCase describes authentication/registration and account self-service.
type UseCase interface {
	Register(ctx context.Context, email, password, fullName string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
	Me(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (user.User, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, s user.Settings) (user.User, error)
}

type Result struct {
	User  user.User
	Token string
}

// ProfileUpdate carries a partial profile edit; empty fields are skipped.
type ProfileUpdate struct {
	FullName       string
	Bio            string
	CurrentRole    string
	TargetRole     string
	Skills         []string
	EducationLevel string
	WorkExperience string
	Industry       string
}

type service struct {
	repo   user.Repository
	tokens TokenGenerator
	mail   Mailer
	log    *zap.Logger
}

// NewService returns default implementation of UseCase. mail may be nil.
func NewService(repo user.Repository, tokens TokenGenerator, mail Mailer, log *zap.Logger) UseCase {
	return &service{repo: repo, tokens: tokens, mail: mail, log: log}
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (Result, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	fullName = strings.TrimSpace(fullName)
	if email == "" || password == "" || fullName == "" {
		return Result{}, ErrInvalidCredentials
	}

	// If user exists, fail fast (best-effort check)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Result{}, user.ErrAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
		Level:        1,
		Badges:       []user.Badge{},
		Settings:     user.DefaultSettings(),
		Profile:      user.Profile{Skills: []string{}},
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Generate(ctx, u)
	if err != nil {
		return Result{}, err
	}
	if s.mail != nil {
		// Welcome mail is fire-and-forget, like the rest of account mail.
		go func(email, name string) {
			if err := s.mail.SendWelcome(context.Background(), email, name); err != nil {
				s.log.Warn("welcome email failed", zap.String("email", email), zap.Error(err))
			}
		}(u.Email, u.FullName)
	}
	return Result{User: u, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return Result{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Result{}, ErrInvalidCredentials
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		s.log.Warn("update last login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	} else {
		u.LastLogin = &now
	}
	token, err := s.tokens.Generate(ctx, u)
	if err != nil {
		return Result{}, err
	}
	return Result{User: u, Token: token}, nil
}

func (s *service) Me(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if name := strings.TrimSpace(upd.FullName); name != "" && name != u.FullName {
		if err := s.repo.UpdateFullName(ctx, id, name); err != nil {
			return user.User{}, err
		}
		u.FullName = name
	}
	p := u.Profile
	if upd.Bio != "" {
		p.Bio = upd.Bio
	}
	if upd.CurrentRole != "" {
		p.CurrentRole = upd.CurrentRole
	}
	if upd.TargetRole != "" {
		p.TargetRole = upd.TargetRole
	}
	if upd.Skills != nil {
		p.Skills = upd.Skills
	}
	if upd.EducationLevel != "" {
		p.EducationLevel = upd.EducationLevel
	}
	if upd.WorkExperience != "" {
		p.WorkExperience = upd.WorkExperience
	}
	if upd.Industry != "" {
		p.Industry = upd.Industry
	}
	if err := s.repo.UpdateProfile(ctx, id, p); err != nil {
		return user.User{}, err
	}
	u.Profile = p
	return u, nil
}

func (s *service) UpdateSettings(ctx context.Context, id uuid.UUID, set user.Settings) (user.User, error) {
	switch set.ReminderFrequency {
	case "daily", "weekly", "monthly", "none":
	default:
		return user.User{}, ErrInvalidSettings
	}
	switch set.Theme {
	case "light", "dark":
	default:
		return user.User{}, ErrInvalidSettings
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if err := s.repo.UpdateSettings(ctx, id, set); err != nil {
		return user.User{}, err
	}
	u.Settings = set
	return u, nil
}
