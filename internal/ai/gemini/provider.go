// Package gemini implements models.VisionProvider against the Gemini
// generateContent API, sending frames as inline base64 parts.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/config"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// Provider implements models.VisionProvider using Gemini.
type Provider struct {
	cfg    config.GeminiConfig
	client *http.Client
}

// NewProvider creates a Gemini provider. The HTTP client carries no timeout
// of its own; the caller's context bounds the round trip.
func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (p *Provider) Name() string { return "gemini" }

func (p *Provider) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	mime := req.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}

	parts := make([]part, 0, len(req.Frames)+1)
	parts = append(parts, part{Text: req.Prompt})
	for _, frame := range req.Frames {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: mime,
			Data:     base64.StdEncoding.EncodeToString(frame),
		}})
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.cfg.BaseURL, p.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", classifyStatus(resp.StatusCode, string(snippet))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", models.ErrMalformedResponse, err)
	}

	text := parsed.text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty candidate text", models.ErrMalformedResponse)
	}
	return text, nil
}

// classifyTransportError maps transport-level errors to the provider error
// taxonomy.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", models.ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", models.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", models.ErrServiceUnavailable, err)
}

func classifyStatus(status int, snippet string) error {
	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d: %s", models.ErrRateLimited, status, snippet)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: status %d: %s", models.ErrBadRequest, status, snippet)
	case status >= 500:
		return fmt.Errorf("%w: status %d: %s", models.ErrServiceUnavailable, status, snippet)
	default:
		return fmt.Errorf("%w: status %d: %s", models.ErrAPI, status, snippet)
	}
}

// --- Gemini request/response types ---

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) text() string {
	var sb strings.Builder
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		break // only the first candidate is requested
	}
	return sb.String()
}

var _ models.VisionProvider = (*Provider)(nil)
