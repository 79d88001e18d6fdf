package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/elliotskunk/stumble/internal/store"
)

// LoggingProvider is a decorator that records every LLM call in the
// store's call log.
type LoggingProvider struct {
	inner Provider
	name  string
	log   store.CallLog
}

// WithLogging wraps a Provider with call logging. name is the provider's
// configured name (gemini, anthropic, ...), recorded alongside the model.
func WithLogging(p Provider, name string, log store.CallLog) Provider {
	return &LoggingProvider{inner: p, name: name, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.LLMCallRecord{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Logging is best-effort; a failed write never fails the request.
	if logErr := l.log.RecordLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
