package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

// anthropicVersion is the wire version expected by the single-shot invoke
// body.
const anthropicVersion = "bedrock-2023-05-31"

var (
	// ErrNoModelText reports a model response without extractable text.
	ErrNoModelText = errors.New("no text content in model response")
	// ErrNoModelMessage reports a converse response without an output message.
	ErrNoModelMessage = errors.New("no message in model response output")
)

// ModelClient exposes the minimal Bedrock runtime surface used by the
// strategies.
type ModelClient interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// InferenceConfig bounds a single model call. Both call shapes share it.
type InferenceConfig struct {
	MaxTokens   int32
	Temperature float32
}

// request carries one prompt exchange to a strategy.
type request struct {
	System   string
	Messages []domain.Message
}

// strategy is one call shape attempted against the model service.
type strategy interface {
	name() string
	send(ctx context.Context, req request) (*domain.Message, error)
}

// invokeStrategy is the single-shot call shape: an Anthropic messages body
// whose raw response body is decoded and mined for its first text block.
type invokeStrategy struct {
	client    ModelClient
	modelID   string
	inference InferenceConfig
}

func (s *invokeStrategy) name() string { return "invoke" }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int32              `json:"max_tokens"`
	Temperature      float32            `json:"temperature"`
	System           string             `json:"system"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (s *invokeStrategy) send(ctx context.Context, req request) (*domain.Message, error) {
	messages := make([]anthropicMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, anthropicMessage{
			Role:    msg.Role,
			Content: flattenContent(msg.Content),
		})
	}

	body, err := json.Marshal(anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        s.inference.MaxTokens,
		Temperature:      s.inference.Temperature,
		System:           req.System,
		Messages:         messages,
	})
	if err != nil {
		return nil, fmt.Errorf("encode invoke body: %w", err)
	}

	out, err := s.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(s.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke model: %w", err)
	}

	var decoded anthropicResponse
	if err := json.Unmarshal(out.Body, &decoded); err != nil {
		return nil, fmt.Errorf("decode invoke response: %w", err)
	}
	if len(decoded.Content) == 0 || decoded.Content[0].Text == "" {
		return nil, ErrNoModelText
	}

	return &domain.Message{
		Role:    "assistant",
		Content: []domain.ContentBlock{{Text: decoded.Content[0].Text}},
	}, nil
}

// converseStrategy is the conversational call shape carrying a system block
// and the full message list.
type converseStrategy struct {
	client    ModelClient
	modelID   string
	inference InferenceConfig
}

func (s *converseStrategy) name() string { return "converse" }

func (s *converseStrategy) send(ctx context.Context, req request) (*domain.Message, error) {
	messages := make([]types.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		content := make([]types.ContentBlock, 0, len(msg.Content))
		for _, block := range msg.Content {
			content = append(content, &types.ContentBlockMemberText{Value: block.Text})
		}
		messages = append(messages, types.Message{
			Role:    types.ConversationRole(msg.Role),
			Content: content,
		})
	}

	out, err := s.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId:  aws.String(s.modelID),
		System:   []types.SystemContentBlock{&types.SystemContentBlockMemberText{Value: req.System}},
		Messages: messages,
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(s.inference.MaxTokens),
			Temperature: aws.Float32(s.inference.Temperature),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("converse: %w", err)
	}

	output, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, ErrNoModelMessage
	}

	content := make([]domain.ContentBlock, 0, len(output.Value.Content))
	for _, block := range output.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			content = append(content, domain.ContentBlock{Text: text.Value})
		}
	}
	return &domain.Message{
		Role:    string(output.Value.Role),
		Content: content,
	}, nil
}

func flattenContent(blocks []domain.ContentBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		parts = append(parts, block.Text)
	}
	return strings.Join(parts, "\n")
}
