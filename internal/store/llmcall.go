package store

import (
	"context"
	"time"
)

// LLMCallRecord captures one provider round-trip for the call log.
type LLMCallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// CallLog records LLM API calls. The store implements it; tests use
// in-memory fakes.
type CallLog interface {
	RecordLLMCall(ctx context.Context, rec LLMCallRecord) error
}

// RecordLLMCall appends one call record to the llm_calls table.
func (s *Store) RecordLLMCall(ctx context.Context, rec LLMCallRecord) error {
	success := 0
	if rec.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO llm_calls (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, success, rec.ErrorMessage)
	return err
}

// LLMCall is a stored call record.
type LLMCall struct {
	ID        int
	Timestamp time.Time
	LLMCallRecord
}

// ListLLMCalls returns the newest call records, most recent first.
func (s *Store) ListLLMCalls(ctx context.Context, limit int) ([]LLMCall, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
FROM llm_calls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []LLMCall
	for rows.Next() {
		var (
			c       LLMCall
			ts      string
			success int
		)
		if err := rows.Scan(&c.ID, &ts, &c.Provider, &c.Model, &c.Purpose,
			&c.InputTokens, &c.OutputTokens, &c.LatencyMs, &success, &c.ErrorMessage); err != nil {
			return nil, err
		}
		c.Success = success != 0
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			c.Timestamp = t
		}
		calls = append(calls, c)
	}
	return calls, rows.Err()
}

// NopCallLog discards every record. Used when no database is open.
type NopCallLog struct{}

func (NopCallLog) RecordLLMCall(context.Context, LLMCallRecord) error { return nil }
