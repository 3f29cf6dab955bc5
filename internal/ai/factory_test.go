package ai

import (
	"testing"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"gemini", "gemini", false},
		{"openai", "openai", false},
		{"mock", "mock", false},
		{"", "", true},
		{"claude", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			p, err := NewProvider(config.AIConfig{Provider: tt.provider})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewProvider(%q) succeeded, want error", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider(%q): %v", tt.provider, err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}
