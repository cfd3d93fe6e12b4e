package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arguehive/debatehub-backend/pkg/config"
	"github.com/arguehive/debatehub-backend/pkg/logger"
)

// GeneratedDebate holds the AI-seeded opening arguments for both sides.
type GeneratedDebate struct {
	For     []string `json:"for"`
	Against []string `json:"against"`
}

// Generator produces debate arguments and summaries. Implementations must
// never block indefinitely and must degrade to placeholder text on provider
// failure so debate creation cannot fail on the provider.
type Generator interface {
	GenerateDebate(ctx context.Context, topic string) GeneratedDebate
	Summarize(ctx context.Context, arguments []string) string
}

// Client calls the Gemini generateContent REST API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logg       *logger.Logger
}

// NewClient builds a Gemini client from config. An empty API key is allowed:
// every call then returns placeholder output.
func NewClient(cfg config.GeminiConfig, logg *logger.Logger) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logg: logg,
	}
}

// GenerateDebate asks the model for three FOR and three AGAINST arguments on
// the topic. Any provider failure yields deterministic placeholders.
func (c *Client) GenerateDebate(ctx context.Context, topic string) GeneratedDebate {
	if c.apiKey == "" {
		c.warn(ctx, "gemini api key not set, returning placeholder arguments", nil)
		return placeholderArguments(topic)
	}

	prompt := fmt.Sprintf(`Generate a structured debate on: %q

Return ONLY valid JSON in this exact format (no markdown, no code blocks):
{
    "for": ["argument 1 supporting the topic", "argument 2 supporting the topic", "argument 3 supporting the topic"],
    "against": ["argument 1 against the topic", "argument 2 against the topic", "argument 3 against the topic"]
}

Make arguments concise, distinct, and logical.`, topic)

	text, err := c.generateContent(ctx, prompt)
	if err != nil {
		c.warn(ctx, "gemini generate failed, returning placeholder arguments", err)
		return placeholderArguments(topic)
	}

	var generated GeneratedDebate
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &generated); err != nil {
		c.warn(ctx, "gemini response was not valid JSON, returning placeholder arguments", err)
		return placeholderArguments(topic)
	}
	if len(generated.For) == 0 && len(generated.Against) == 0 {
		c.warn(ctx, "gemini response had no arguments, returning placeholders", nil)
		return placeholderArguments(topic)
	}
	return generated
}

// Summarize produces a short neutral summary of the argument texts.
func (c *Client) Summarize(ctx context.Context, arguments []string) string {
	if len(arguments) == 0 {
		return "No arguments provided for summary."
	}
	if c.apiKey == "" {
		c.warn(ctx, "gemini api key not set, returning placeholder summary", nil)
		return placeholderSummary
	}

	var sb strings.Builder
	for _, arg := range arguments {
		sb.WriteString("- ")
		sb.WriteString(arg)
		sb.WriteString("\n")
	}
	prompt := fmt.Sprintf(`Summarize the following debate arguments in a neutral, concise manner (2-3 sentences):

%s
Provide only the summary, no additional text.`, sb.String())

	text, err := c.generateContent(ctx, prompt)
	if err != nil {
		c.warn(ctx, "gemini summarize failed, returning placeholder summary", err)
		return placeholderSummary
	}
	summary := strings.TrimSpace(text)
	if summary == "" {
		return "Summary unavailable."
	}
	return summary
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

func (c *Client) warn(ctx context.Context, msg string, err error) {
	if c.logg == nil {
		return
	}
	if err != nil {
		ctx = c.logg.WithField(ctx, "error", err.Error())
	}
	c.logg.Warn(ctx, msg)
}

const placeholderSummary = "Summary: This debate presents multiple perspectives on the topic at hand."

func placeholderArguments(topic string) GeneratedDebate {
	return GeneratedDebate{
		For: []string{
			fmt.Sprintf("Supporting arguments that favor the position on %s", topic),
			fmt.Sprintf("Evidence-based reasoning for %s", topic),
			fmt.Sprintf("Practical benefits of %s", topic),
		},
		Against: []string{
			fmt.Sprintf("Counterarguments opposing %s", topic),
			fmt.Sprintf("Potential risks or downsides of %s", topic),
			"Alternative perspectives to consider",
		},
	}
}

// stripCodeFences removes a leading ```json / ``` block wrapper if present.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimPrefix(trimmed, "json")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
