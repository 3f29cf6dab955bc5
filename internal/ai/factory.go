package ai

import (
	"fmt"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/ai/gemini"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/ai/mock"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/ai/openai"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/config"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// NewProvider constructs the appropriate vision provider based on config.
// Called once at server startup.
func NewProvider(cfg config.AIConfig) (models.VisionProvider, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewProvider(cfg.Gemini), nil
	case "openai":
		return openai.NewProvider(cfg.OpenAI), nil
	case "mock":
		return mock.NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of gemini, openai, mock", cfg.Provider)
	}
}
