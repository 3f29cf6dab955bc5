package models

import (
	"context"
	"errors"
)

// Sentinel errors classifying model round-trip failures. Providers wrap these
// so the job lifecycle can pick a user-facing refund reason with errors.Is.
var (
	ErrTimeout            = errors.New("model analysis timed out")
	ErrRateLimited        = errors.New("model provider rate limited")
	ErrBadRequest         = errors.New("model provider rejected the request")
	ErrServiceUnavailable = errors.New("model provider unavailable")
	ErrMalformedResponse  = errors.New("model returned an unparseable response")
	ErrAPI                = errors.New("model provider error")
)

// VisionProvider is the core interface that all model integrations must
// implement. Never call specific providers directly — always inject this
// interface.
type VisionProvider interface {
	// Generate sends the prompt plus image frames to the model and returns
	// the raw text response. The response may be markdown-wrapped; JSON
	// extraction is the caller's responsibility.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
}

// GenerationRequest is the input to a single model round trip.
type GenerationRequest struct {
	Prompt   string
	Frames   [][]byte // encoded image bytes, temporal order
	MIMEType string   // defaults to image/jpeg when empty
}
