package extractor

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewClaudeExtractorRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewClaudeExtractor("", "", 0)
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
	if !errors.Is(err, ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}
}

func TestNewClaudeExtractorEnvVarUsed(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key-from-env")

	e, err := NewClaudeExtractor("", "", 10*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e == nil {
		t.Fatal("expected non-nil extractor")
	}
	if e.Name() != "claude" {
		t.Errorf("Name() = %q", e.Name())
	}
}

func TestParseResponse(t *testing.T) {
	raw := `{"country": "France", "varieties": [{"latin_name": "Rosa", "common_name": "Rose", "variety_name": "Peace"}]}`

	ex, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if ex.Country != "France" {
		t.Errorf("country = %q", ex.Country)
	}
	if len(ex.Varieties) != 1 || ex.Varieties[0].VarietyName != "Peace" {
		t.Errorf("varieties = %+v", ex.Varieties)
	}
}

func TestParseResponseMarkdownFences(t *testing.T) {
	raw := "```json\n{\"country\": \"Japan\", \"varieties\": []}\n```"

	ex, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if ex.Country != "Japan" {
		t.Errorf("country = %q", ex.Country)
	}
	if ex.Varieties == nil || len(ex.Varieties) != 0 {
		t.Errorf("varieties = %+v, want empty non-nil", ex.Varieties)
	}
}

func TestParseResponseNameAsArray(t *testing.T) {
	raw := `{"country": "Kenya", "varieties": [{"latin_name": ["Rosa", "Tulipa"], "common_name": "Rose", "variety_name": ""}]}`

	ex, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if len(ex.Varieties) != 1 || ex.Varieties[0].LatinName != "Rosa" {
		t.Errorf("varieties = %+v", ex.Varieties)
	}
}

func TestParseResponseFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"prose", "I could not find any structured data in this record."},
		{"truncated", `{"country": "Fra`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseResponse(tt.raw); err == nil {
				t.Errorf("parseResponse(%q) succeeded, want error", tt.raw)
			}
		})
	}
}

func TestParseResponseAllUnknownIsEmpty(t *testing.T) {
	raw := `{"country": "unknown", "varieties": []}`

	_, err := parseResponse(raw)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestRenderPrompt(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	e, err := NewClaudeExtractor("", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt, err := e.renderPrompt(recordWith("12 Rue X, Lyon, France", "Rosa 'Peace'"))
	if err != nil {
		t.Fatalf("renderPrompt failed: %v", err)
	}
	if !strings.Contains(prompt, "Lyon") || !strings.Contains(prompt, "Rosa 'Peace'") {
		t.Errorf("prompt missing record text:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"country"`) {
		t.Errorf("prompt missing schema instructions:\n%s", prompt)
	}
}
