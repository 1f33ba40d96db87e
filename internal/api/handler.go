// Package api routes resolver invocations to the gateway's backend services
// and encodes results into the legacy envelope contract.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soapdogg/travel-personal-assistant/internal/assistant"
	"github.com/soapdogg/travel-personal-assistant/internal/auth"
	"github.com/soapdogg/travel-personal-assistant/internal/domain"
	"github.com/soapdogg/travel-personal-assistant/internal/observability"
	"github.com/soapdogg/travel-personal-assistant/internal/workout"
)

// Handler dispatches one invocation to exactly one backend operation. It is
// constructed once per process and shared across warm invocations; it holds
// no per-request state.
type Handler struct {
	verifier  *auth.Verifier
	workouts  *workout.Service
	assistant *assistant.Invoker
	logger    *zap.Logger
}

// NewHandler builds a Handler.
func NewHandler(verifier *auth.Verifier, workouts *workout.Service, invoker *assistant.Invoker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		verifier:  verifier,
		workouts:  workouts,
		assistant: invoker,
		logger:    logger,
	}
}

// Handle is the Lambda entry point. Store-backed operations always return an
// envelope string; model-backed operations return text or fail the
// invocation outright.
func (h *Handler) Handle(ctx context.Context, evt Event) (string, error) {
	log := h.logger.With(zap.String("invocation_id", uuid.NewString()))

	op, err := resolveOperation(evt)
	if err != nil {
		log.Error("could not resolve operation", zap.Error(err))
		observability.RecordOperation("unknown", "rejected")
		return "", err
	}

	log = log.With(zap.String("operation", string(op)))
	log.Info("dispatching operation")

	result, err := h.dispatch(ctx, log, op, evt.Arguments)
	if err != nil {
		log.Error("operation failed", zap.Error(err))
		observability.RecordOperation(string(op), "error")
		return "", err
	}

	observability.RecordOperation(string(op), "ok")
	return result, nil
}

func (h *Handler) dispatch(ctx context.Context, log *zap.Logger, op Operation, args json.RawMessage) (string, error) {
	switch op {
	case OpAuthenticateUser:
		return h.authenticateUser(ctx, log, args)
	case OpGetLegacyWorkouts:
		return h.getLegacyWorkouts(ctx, log, args)
	case OpSaveLegacyWorkout:
		return h.saveLegacyWorkout(ctx, log, args)
	case OpGetWorkoutRecommendations:
		return h.getWorkoutRecommendations(ctx, args)
	case OpGetAIRecommendations:
		return h.getAIRecommendations(ctx, args)
	case OpChat:
		return h.chat(ctx, args)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

func (h *Handler) authenticateUser(ctx context.Context, log *zap.Logger, args json.RawMessage) (string, error) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		log.Error("malformed authentication arguments", zap.Error(err))
		return failure("Authentication failed")
	}

	cred, err := h.verifier.Verify(ctx, in.Username, in.Password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return failure("User not found")
	case errors.Is(err, auth.ErrInvalidPassword):
		return failure("Invalid password")
	case err != nil:
		log.Error("credential lookup failed", zap.Error(err))
		observability.RecordStoreError("users")
		return failure("Authentication failed")
	}

	return encodeEnvelope(authEnvelope{
		Success: true,
		User:    userView{Username: cred.Username, CreatedAt: cred.CreatedAt},
	})
}

func (h *Handler) getLegacyWorkouts(ctx context.Context, log *zap.Logger, args json.RawMessage) (string, error) {
	var in struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		log.Error("malformed workout query arguments", zap.Error(err))
		return failure("Failed to fetch workouts")
	}

	views, err := h.workouts.ListByUser(ctx, in.UserID)
	if err != nil {
		log.Error("workout query failed", zap.Error(err))
		observability.RecordStoreError("workouts")
		return failure("Failed to fetch workouts")
	}

	return encodeEnvelope(workoutsEnvelope{Success: true, Workouts: views})
}

func (h *Handler) saveLegacyWorkout(ctx context.Context, log *zap.Logger, args json.RawMessage) (string, error) {
	var in struct {
		UserID  string          `json:"userId"`
		Workout json.RawMessage `json:"workout"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		log.Error("malformed workout save arguments", zap.Error(err))
		return failure("Failed to save workout")
	}

	workoutID, err := h.workouts.Save(ctx, in.UserID, in.Workout)
	if err != nil {
		log.Error("workout save failed", zap.Error(err))
		observability.RecordStoreError("workouts")
		return failure("Failed to save workout")
	}

	return encodeEnvelope(saveEnvelope{Success: true, WorkoutID: workoutID})
}

func (h *Handler) getWorkoutRecommendations(ctx context.Context, args json.RawMessage) (string, error) {
	var in struct {
		ExerciseData   json.RawMessage `json:"exerciseData"`
		WorkoutHistory json.RawMessage `json:"workoutHistory"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return "", fmt.Errorf("decode recommendation arguments: %w", err)
	}

	msg, err := h.assistant.CoachingPlan(ctx, string(in.ExerciseData), string(in.WorkoutHistory))
	if err != nil {
		return "", err
	}
	return encodeMessage(msg)
}

func (h *Handler) getAIRecommendations(ctx context.Context, args json.RawMessage) (string, error) {
	var in struct {
		PromptType  string          `json:"promptType"`
		ContextData json.RawMessage `json:"contextData"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return "", fmt.Errorf("decode recommendation arguments: %w", err)
	}

	return h.assistant.Recommend(ctx, assistant.PromptType(in.PromptType), textOrJSON(in.ContextData))
}

func (h *Handler) chat(ctx context.Context, args json.RawMessage) (string, error) {
	var in struct {
		Conversation []domain.Message `json:"conversation"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return "", fmt.Errorf("decode conversation: %w", err)
	}

	msg, err := h.assistant.Chat(ctx, in.Conversation)
	if err != nil {
		return "", err
	}
	return encodeMessage(msg)
}

// encodeMessage serializes the assistant message for the converse-backed
// operations.
func encodeMessage(msg *domain.Message) (string, error) {
	encoded, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// textOrJSON returns the plain value when raw holds a JSON string, and the
// raw JSON text otherwise. Context data may arrive either way.
func textOrJSON(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
