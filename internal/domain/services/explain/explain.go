// Package explain turns finished rule analyses into user-facing prose. The
// explanation layer never scores anything: risk score, level and flags are
// decided by the rule engine and only described here, either by the Gemini
// API or by the deterministic local fallback.
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"phishguard/internal/domain/models"
	"phishguard/internal/domain/services/detect"
	"phishguard/pkg/logger"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Request carries the rule-engine findings to be explained
type Request struct {
	InputType models.InputType
	RiskScore int
	RiskLevel models.RiskLevel
	Flags     []string
	Language  detect.Language
}

// Config holds explanation client configuration
type Config struct {
	APIKey          string
	APIURL          string
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
}

// Client generates explanations, preferring the Gemini API and falling
// back to the local template on any failure
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
	config     Config
}

// NewClient creates an explanation client
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3 // low temperature: explain, don't improvise
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 200
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log.WithComponent("explain-client"),
		config: cfg,
	}
}

// Explain returns a short plain-text explanation of the analysis. It never
// returns an error: when the API is not configured or a call fails in any
// way, the deterministic fallback explanation is returned instead.
func (c *Client) Explain(ctx context.Context, req Request) string {
	if c.config.APIKey == "" {
		return Fallback(req)
	}

	text, err := c.callGemini(ctx, req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("explanation API call failed, using fallback")
		return Fallback(req)
	}
	return text
}

func (c *Client) callGemini(ctx context.Context, req Request) (string, error) {
	prompt := buildPrompt(req)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     c.config.Temperature,
			"maxOutputTokens": c.config.MaxOutputTokens,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := c.config.APIURL + "?key=" + c.config.APIKey
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(req Request) string {
	findings, _ := json.Marshal(map[string]interface{}{
		"input_type": req.InputType,
		"risk_score": req.RiskScore,
		"risk_level": req.RiskLevel,
		"flags":      req.Flags,
		"language":   req.Language,
	})

	return fmt.Sprintf(`You are a cybersecurity assistant explaining scam detection results to users.
The detection was done by a RULE-BASED system, NOT by AI. Your job is ONLY to explain.

Analysis Data: %s

Provide a brief explanation (3-5 lines) that includes:
1. Why this is flagged as %s based on the detected patterns
2. What the user should NOT do
3. Safe next steps

Keep response simple and helpful. Use %s language if not English.
Do NOT make new assessments - only explain the rule findings.`, findings, req.RiskLevel, req.Language)
}
