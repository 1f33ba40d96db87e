// Package workout implements the legacy workout read and append operations.
package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

// Service lists and appends legacy workout rows.
type Service struct {
	repo domain.WorkoutRepository
	now  func() time.Time
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithClock overrides the time source used for workout IDs and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a Service.
func NewService(repo domain.WorkoutRepository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListByUser returns every workout stored for userID with sets normalized to
// their native list form.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutView, error) {
	return s.repo.ListByUser(ctx, userID)
}

// saveInput is the parsed workout payload supplied by the caller.
type saveInput struct {
	Exercise string          `json:"exercise"`
	Date     string          `json:"date"`
	Sets     json.RawMessage `json:"sets"`
}

// Save persists one workout for userID. The payload may arrive either as a
// structured object or as a JSON-encoded string of one; sets are always
// written back as a JSON string regardless of how they arrived.
func (s *Service) Save(ctx context.Context, userID string, payload json.RawMessage) (string, error) {
	input, err := decodePayload(payload)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	workoutID := fmt.Sprintf("%s#%s#%d", input.Exercise, input.Date, now.UnixMilli())

	sets := "null"
	if len(input.Sets) > 0 {
		sets = string(input.Sets)
	}

	record := domain.WorkoutRecord{
		UserID:    userID,
		WorkoutID: workoutID,
		Exercise:  input.Exercise,
		Date:      input.Date,
		Sets:      sets,
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := s.repo.Put(ctx, record); err != nil {
		return "", err
	}
	return workoutID, nil
}

func decodePayload(payload json.RawMessage) (saveInput, error) {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" {
		return saveInput{}, errors.New("empty workout payload")
	}

	// A leading quote means the caller sent the workout as a JSON string;
	// unwrap once before decoding the object.
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return saveInput{}, fmt.Errorf("unwrap workout payload: %w", err)
		}
		trimmed = inner
	}

	var input saveInput
	if err := json.Unmarshal([]byte(trimmed), &input); err != nil {
		return saveInput{}, fmt.Errorf("parse workout payload: %w", err)
	}
	return input, nil
}
