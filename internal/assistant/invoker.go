// Package assistant builds prompts and drives the Bedrock model service
// through an ordered list of call shapes.
package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
	"github.com/soapdogg/travel-personal-assistant/internal/observability"
)

// Invoker runs model calls against a fixed model ID. The fallback chain is
// strictly sequential: the next shape is attempted only after the previous
// one has failed, and each shape is tried at most once per invocation.
type Invoker struct {
	primary  strategy
	fallback strategy
	logger   *zap.Logger
}

// NewInvoker constructs an Invoker with the invoke-then-converse chain.
func NewInvoker(client ModelClient, modelID string, inference InferenceConfig, logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{
		primary:  &invokeStrategy{client: client, modelID: modelID, inference: inference},
		fallback: &converseStrategy{client: client, modelID: modelID, inference: inference},
		logger:   logger,
	}
}

// Recommend generates plain-text advice for the selected prompt template and
// caller-supplied context. It attempts the primary single-shot shape first
// and falls back to the conversational shape when that fails for any reason.
func (inv *Invoker) Recommend(ctx context.Context, promptType PromptType, contextData string) (string, error) {
	req := request{
		System:   SystemPrompt(promptType),
		Messages: []domain.Message{userMessage(contextData)},
	}

	msg, err := inv.primary.send(ctx, req)
	if err != nil {
		inv.logger.Warn("model call shape failed, trying fallback",
			zap.String("shape", inv.primary.name()), zap.Error(err))
		observability.RecordModelFallback()

		msg, err = inv.fallback.send(ctx, req)
		if err != nil {
			return "", fmt.Errorf("all model call shapes failed: %w", err)
		}
	}

	text, ok := firstText(msg)
	if !ok {
		return "", ErrNoModelText
	}
	return text, nil
}

// CoachingPlan asks the model for structured recommendations built from the
// current exercise data and workout history, both passed as JSON text. Only
// the conversational shape is used.
func (inv *Invoker) CoachingPlan(ctx context.Context, exerciseData, workoutHistory string) (*domain.Message, error) {
	prompt := fmt.Sprintf(coachContextTemplate, exerciseData, workoutHistory)
	msg, err := inv.fallback.send(ctx, request{
		System:   coachPrompt,
		Messages: []domain.Message{userMessage(prompt)},
	})
	if err != nil {
		return nil, fmt.Errorf("coaching plan: %w", err)
	}
	return msg, nil
}

// Chat continues a caller-supplied conversation under the fixed chat system
// prompt. Only the conversational shape is used.
func (inv *Invoker) Chat(ctx context.Context, conversation []domain.Message) (*domain.Message, error) {
	msg, err := inv.fallback.send(ctx, request{
		System:   chatPrompt,
		Messages: conversation,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return msg, nil
}

func userMessage(text string) domain.Message {
	return domain.Message{
		Role:    "user",
		Content: []domain.ContentBlock{{Text: text}},
	}
}

func firstText(msg *domain.Message) (string, bool) {
	if msg == nil || len(msg.Content) == 0 || msg.Content[0].Text == "" {
		return "", false
	}
	return msg.Content[0].Text, true
}
