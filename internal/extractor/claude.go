package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/untoldecay/FloraSheet/internal/audit"
	"github.com/untoldecay/FloraSheet/internal/types"
)

const (
	defaultModel   = "claude-3-5-haiku-20241022"
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	defaultTimeout = 30 * time.Second
)

// ErrAPIKeyRequired is returned when an API key is needed but not provided.
var ErrAPIKeyRequired = errors.New("API key required")

// ClaudeExtractor is the AI strategy. Each call is bounded by a per-record
// timeout and a small retry budget; any failure is reported to the caller,
// which degrades that record to the table strategy.
type ClaudeExtractor struct {
	client         anthropic.Client
	model          anthropic.Model
	promptTemplate *template.Template
	maxRetries     int
	initialBackoff time.Duration
	callTimeout    time.Duration
	auditEnabled   bool
}

// NewClaudeExtractor creates the AI extractor. Env var ANTHROPIC_API_KEY takes
// precedence over the explicit apiKey.
func NewClaudeExtractor(apiKey, model string, timeout time.Duration) (*ClaudeExtractor, error) {
	envKey := os.Getenv("ANTHROPIC_API_KEY")
	if envKey != "" {
		apiKey = envKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY environment variable or provide via config", ErrAPIKeyRequired)
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tmpl, err := template.New("extract").Parse(extractPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &ClaudeExtractor{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:          anthropic.Model(model),
		promptTemplate: tmpl,
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		callTimeout:    timeout,
	}, nil
}

// EnableAudit turns on JSONL logging of every API call.
func (c *ClaudeExtractor) EnableAudit() {
	c.auditEnabled = true
}

func (c *ClaudeExtractor) Name() string {
	return "claude"
}

func (c *ClaudeExtractor) Extract(ctx context.Context, rec types.RawRecord) (*Extraction, error) {
	prompt, err := c.renderPrompt(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, callErr := c.callWithRetry(callCtx, prompt)
	if c.auditEnabled {
		// Best-effort: never fail extraction because audit logging failed.
		e := &audit.Entry{
			Kind:     "llm_call",
			Row:      rec.Index,
			Model:    string(c.model),
			Prompt:   prompt,
			Response: resp,
		}
		if callErr != nil {
			e.Error = callErr.Error()
		}
		_, _ = audit.Append(e)
	}
	if callErr != nil {
		return nil, callErr
	}

	return parseResponse(resp)
}

func (c *ClaudeExtractor) callWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.initialBackoff * time.Duration(math.Pow(2, float64(attempt-1)))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		message, err := c.client.Messages.New(ctx, params)

		if err == nil {
			if len(message.Content) > 0 {
				content := message.Content[0]
				if content.Type == "text" {
					return content.Text, nil
				}
				return "", fmt.Errorf("unexpected response format: not a text block (type=%s)", content.Type)
			}
			return "", fmt.Errorf("unexpected response format: no content blocks")
		}

		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if !isRetryable(err) {
			return "", fmt.Errorf("non-retryable error: %w", err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		statusCode := apiErr.StatusCode
		if statusCode == 429 || statusCode >= 500 {
			return true
		}
		return false
	}

	return false
}

// claudeResponse is the expected response schema. Names are unmarshalled as
// raw messages because models occasionally return arrays where a string was
// asked for.
type claudeResponse struct {
	Country   string `json:"country"`
	Varieties []struct {
		LatinName   json.RawMessage `json:"latin_name"`
		CommonName  json.RawMessage `json:"common_name"`
		VarietyName json.RawMessage `json:"variety_name"`
	} `json:"varieties"`
}

// parseResponse turns a model reply into an Extraction. Anything that does
// not match the requested schema is an extraction failure, never a guess.
func parseResponse(raw string) (*Extraction, error) {
	cleaned := cleanJSON(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var parsed claudeResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w (response: %s)", err, raw)
	}

	ex := &Extraction{
		Country:   strings.TrimSpace(parsed.Country),
		Varieties: []types.VarietyEntry{},
	}
	if strings.EqualFold(ex.Country, "unknown") || strings.EqualFold(ex.Country, "null") {
		ex.Country = ""
	}

	for _, v := range parsed.Varieties {
		entry := types.VarietyEntry{
			LatinName:   rawString(v.LatinName),
			CommonName:  rawString(v.CommonName),
			VarietyName: rawString(v.VarietyName),
		}
		if entry == (types.VarietyEntry{}) {
			continue
		}
		ex.Varieties = append(ex.Varieties, entry)
	}

	if ex.Country == "" && len(ex.Varieties) == 0 {
		return nil, ErrEmptyResponse
	}
	return ex, nil
}

// rawString accepts a JSON string, or the first element of a JSON string
// array, and returns "" for anything else.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.EqualFold(s, "unknown") || strings.EqualFold(s, "null") {
			return ""
		}
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return strings.TrimSpace(list[0])
	}
	return ""
}

func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func (c *ClaudeExtractor) renderPrompt(rec types.RawRecord) (string, error) {
	var buf strings.Builder
	data := struct {
		Address     string
		Description string
	}{
		Address:     rec.Address,
		Description: rec.Description,
	}
	if err := c.promptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const extractPromptTemplate = `You are a data-cleaning assistant for horticultural spreadsheets. Extract structured fields from one raw record.

**Address field:**
{{.Address}}

**Species/variety description field:**
{{.Description}}

RULES:
1. Output ONLY a valid JSON object, no headers or explanations.
2. The object MUST have exactly two keys: "country" and "varieties".
3. "country" is the canonical English country name from the address, or "unknown".
4. "varieties" MUST be an array of objects, one per plant variety in the description. An empty array is valid.
5. Each variety object MUST have exactly three string fields: "latin_name", "common_name", "variety_name". Use "" for anything not present in the text.
6. Do NOT invent values that are not supported by the text.

Required output format:
{
  "country": "France",
  "varieties": [
    {"latin_name": "Rosa", "common_name": "Rose", "variety_name": "Peace"}
  ]
}`
