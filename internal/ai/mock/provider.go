// Package mock provides a models.VisionProvider for testing and local
// development without a real model backend.
package mock

import (
	"context"
	"fmt"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// MockProvider satisfies models.VisionProvider for testing.
type MockProvider struct {
	Name_        string
	GenerateFunc func(ctx context.Context, req models.GenerationRequest) (string, error)
}

func (m *MockProvider) Name() string { return m.Name_ }

func (m *MockProvider) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return "{}", nil
}

// NewMockProvider returns a MockProvider emitting a small valid analysis.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Name_: "mock",
		GenerateFunc: func(_ context.Context, req models.GenerationRequest) (string, error) {
			return fmt.Sprintf(`{
  "overallScore": 75,
  "summary": "Mock analysis generated from %d frames.",
  "strengths": ["Consistent jab", "Good ring generalship", "Strong takedown defense"],
  "weaknesses": ["Low kick defense", "Fades late in rounds"],
  "keyInsights": ["Mock insight for local development"]
}`, len(req.Frames)), nil
		},
	}
}

// NewCannedProvider returns a MockProvider that always emits the given text.
func NewCannedProvider(text string) *MockProvider {
	return &MockProvider{
		Name_: "mock-canned",
		GenerateFunc: func(context.Context, models.GenerationRequest) (string, error) {
			return text, nil
		},
	}
}

// NewFailingProvider returns a MockProvider that always returns the given error.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{
		Name_: "mock-failing",
		GenerateFunc: func(context.Context, models.GenerationRequest) (string, error) {
			return "", err
		},
	}
}

// NewTimeoutProvider returns a MockProvider that blocks until context cancellation.
func NewTimeoutProvider() *MockProvider {
	return &MockProvider{
		Name_: "mock-timeout",
		GenerateFunc: func(ctx context.Context, _ models.GenerationRequest) (string, error) {
			<-ctx.Done()
			return "", fmt.Errorf("%w: %v", models.ErrTimeout, ctx.Err())
		},
	}
}

// Compile-time check that MockProvider implements VisionProvider.
var _ models.VisionProvider = (*MockProvider)(nil)
