package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const FallbackPrompt = "Take a deep breath and reflect on what matters most today."

type PromptService struct {
	quotes QuoteSource
}

func NewPromptService(quotes QuoteSource) *PromptService {
	return &PromptService{
		quotes: quotes,
	}
}

func (ps *PromptService) DailyPrompt(ctx context.Context) string {
	if ps.quotes == nil {
		return FallbackPrompt
	}
	quote, author, err := ps.quotes.RandomQuote(ctx)
	if err != nil {
		slog.Warn("getting quote failed, using fallback prompt", slog.String("error", err.Error()))
		return FallbackPrompt
	}
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return FallbackPrompt
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "Unknown"
	}
	return fmt.Sprintf("\"%s\" — %s", quote, author)
}
