package generation

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"content-graph/config"
)

// Completion 은 모델 호출 한 번의 결과와 사용량이다.
type Completion struct {
	Text         string
	ModelName    string
	ModelVersion string
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// Model is the raw text generation backend.
type Model interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
}

// GeminiModel calls Google Gemini through google.golang.org/genai.
type GeminiModel struct {
	client    *genai.Client
	modelName string
}

// NewGeminiModel 은 GEMINI_API_KEY 로 genai 클라이언트를 만든다.
func NewGeminiModel(ctx context.Context, cfg config.GenerationConfig) (*GeminiModel, error) {
	if cfg.Provider != "google" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiModel{client: client, modelName: cfg.ModelName}, nil
}

func (m *GeminiModel) Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	result, err := m.client.Models.GenerateContent(
		ctx,
		m.modelName,
		genai.Text(userPrompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		},
	)
	if err != nil {
		return nil, classify(err)
	}
	if result == nil {
		return nil, &Error{Kind: KindMalformedOutput, Message: "empty model response"}
	}

	c := &Completion{
		Text:         result.Text(),
		ModelName:    m.modelName,
		ModelVersion: result.ModelVersion,
	}
	if result.UsageMetadata != nil {
		c.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		c.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		c.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}
	return c, nil
}

// unavailableModel 은 모델을 만들 수 없을 때 모든 호출을 upstream_unavailable 로 실패시킨다.
type unavailableModel struct{ cause error }

// NewUnavailableModel wraps a model construction failure so callers still get a
// classified error per call instead of failing at startup.
func NewUnavailableModel(cause error) Model {
	return unavailableModel{cause: cause}
}

func (m unavailableModel) Complete(context.Context, string, string) (*Completion, error) {
	return nil, &Error{Kind: KindUpstreamUnavailable, Message: m.cause.Error(), Err: m.cause}
}
