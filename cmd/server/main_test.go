package main

import (
	"strings"
	"testing"
)

func TestRunFailsFastOnInvalidConfig(t *testing.T) {
	t.Setenv("AI_PROVIDER", "not-a-provider")

	err := run()
	if err == nil {
		t.Fatal("run() succeeded with an invalid provider")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %v, want a config load failure", err)
	}
}

func TestRunFailsFastWithoutProviderKey(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	if err := run(); err == nil {
		t.Fatal("run() succeeded without the provider API key")
	}
}
