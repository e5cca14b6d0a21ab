// Package llm generates the optional narrative comparison of term
// issuance rates. It runs after all numbers are final and never feeds
// back into them.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/eopulse/internal/model"
)

// Provider is a chat-completion backend.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, prompt, modelName string) (string, error)
}

// Summarizer turns a finished report into a short narrative.
type Summarizer struct {
	provider Provider
	model    string
}

// NewSummarizer builds a summarizer from the LLM configuration. Only the
// OpenAI provider is supported.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	switch cfg.Provider {
	case "openai":
		p, err := NewOpenAIProvider(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return &Summarizer{provider: p, model: cfg.Model}, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// Summarize generates the narrative for report.
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	text, err := s.provider.Summarize(ctx, BuildPrompt(report), s.model)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}
	return &model.LLMSummary{
		Provider:  s.provider.Name(),
		Model:     s.model,
		SummaryMD: text,
	}, nil
}

// BuildPrompt renders the per-term numbers into the summary prompt. The
// prompt carries only computed figures so the narrative cannot introduce
// numbers of its own sources.
func BuildPrompt(report *model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Executive orders attributed to US presidential terms, counted from a %d-day horizon after each inauguration.\n\n", report.HorizonDays)
	for _, t := range report.Terms {
		final := 0
		if len(t.Series) > 0 {
			final = t.Series[len(t.Series)-1]
		}
		fmt.Fprintf(&b, "- %s: started %s, lasted %d days, %d orders total, %d within the horizon\n",
			t.Key(), t.Start.Format("2006-01-02"), t.EndOffsetDays, t.Total, final)
	}
	b.WriteString("\nWrite a short, neutral comparison of issuance pace across these terms. Use only the figures above.")
	return b.String()
}
