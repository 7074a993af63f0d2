package llm

import (
	"testing"
)

func TestNewGroqProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-3.3-70b-versatile",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama-3.3-70b-versatile" {
			t.Errorf("model = %q, want %q", p.ModelID(), "llama-3.3-70b-versatile")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewGroqProvider(GroqConfig{
			Model: "llama-3.3-70b-versatile",
		})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("default base URL", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-3.1-8b-instant",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "qwen/qwen3-32b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID should be used as-is (no friendly-name mapping).
		if p.ModelID() != "qwen/qwen3-32b" {
			t.Errorf("model = %q, want %q", p.ModelID(), "qwen/qwen3-32b")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey:  "gsk-test",
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://groq-proxy.example/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
