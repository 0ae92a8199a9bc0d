package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NishuBaviskar/AI-powered-EdTech-Platform/pkg/config"
	"go.uber.org/zap"
)

var (
	ErrMissingAPIKey = errors.New("ai: missing API key")
	ErrEmptyResponse = errors.New("ai: model returned no candidates")
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash-latest"
	defaultTimeout = 30 * time.Second
)

// Client calls the Gemini generateContent REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	genConfig  *generationConfig
	logger     *zap.Logger
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Wire types for the generateContent endpoint
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient creates a Gemini client from application configuration
func NewClient(cfg config.AIConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		model:      model,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

// WithGenerationConfig returns a copy of the client that sends the given
// sampling parameters with every request.
func (c *Client) WithGenerationConfig(temperature float64, maxOutputTokens int) *Client {
	clone := *c
	clone.genConfig = &generationConfig{
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	}
	return &clone
}

// GenerateText sends a prompt and returns the first candidate's text
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: c.genConfig,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generative API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", fmt.Errorf("generative API error: status=%d, message=%s", resp.StatusCode, decoded.Error.Message)
		}
		return "", fmt.Errorf("generative API error: status=%d", resp.StatusCode)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("Generative API call completed",
		zap.String("model", c.model),
		zap.Duration("latency", time.Since(start)))

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateJSON sends a prompt expected to yield JSON, strips any markdown
// code fences the model wrapped around it, and unmarshals into out.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	text, err := c.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}

	cleaned := StripJSONFence(text)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("parsing model JSON output: %w", err)
	}
	return nil
}
