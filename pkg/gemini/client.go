package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Client is the Gemini Generative Language API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Gemini API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API endpoint. Used by tests to point at a mock server.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the default model.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

// ErrEmptyCandidates is returned when the API responds 200 but generates nothing.
var ErrEmptyCandidates = errors.New("no candidates in gemini response")

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	return &result, nil
}

// Complete generates a support answer for a raw user message plus optional
// conversation context, using the fixed assistant prompt and generation settings.
// Returns the generated text, or an error when the call fails or nothing was
// generated — the caller decides how to degrade.
func (c *Client) Complete(ctx context.Context, message, contextText string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini API key not configured")
	}

	req := GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: BuildSupportPrompt(message, contextText)}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     CompletionTemperature,
			TopK:            CompletionTopK,
			TopP:            CompletionTopP,
			MaxOutputTokens: CompletionMaxTokens,
		},
		SafetySettings: defaultSafetySettings(),
	}

	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCandidates
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func defaultSafetySettings() []SafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]SafetySetting, len(categories))
	for i, cat := range categories {
		settings[i] = SafetySetting{Category: cat, Threshold: "BLOCK_MEDIUM_AND_ABOVE"}
	}
	return settings
}
