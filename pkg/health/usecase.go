package health

import "context"

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	Report(ctx context.Context) map[string]string
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Report runs every checker and returns per-dependency status, "ok" or the
// error text. Used by the verbose health endpoint.
func (s *service) Report(ctx context.Context) map[string]string {
	out := make(map[string]string, len(s.checkers))
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			out[ch.Name()] = err.Error()
			continue
		}
		out[ch.Name()] = "ok"
	}
	return out
}
