package challenge

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elliotskunk/stumble/internal/llm"
	"github.com/elliotskunk/stumble/internal/stumble"
)

const (
	generationTemperature = 1.2
	generationMaxTokens   = 1024
)

// LLMGenerator produces challenges with a vision-capable LLM provider.
// Every failure mode (undecodable photo, provider error, malformed
// response) degrades to Fallback().
type LLMGenerator struct {
	provider llm.Provider
}

// NewLLMGenerator wraps a provider as a Generator.
func NewLLMGenerator(p llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: p}
}

// Generate asks the model for a challenge grounded in the photo and
// the user's goal.
func (g *LLMGenerator) Generate(ctx context.Context, photo stumble.Photo, goal string) stumble.ChallengeData {
	img, err := decodePhoto(photo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot decode photo for generation: %v\n", err)
		return Fallback()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{{
			Role:   llm.RoleUser,
			Text:   buildPrompt(goal),
			Images: []llm.ImagePart{img},
		}},
		Schema:      challengeSchema(),
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "challenge"), req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: challenge generation failed: %v\n", err)
		return Fallback()
	}

	var data stumble.ChallengeData
	if err := json.Unmarshal(resp.Content, &data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: malformed challenge response: %v\n", err)
		return Fallback()
	}
	if data.Title == "" || data.Description == "" || data.TimeLimitSeconds <= 0 {
		fmt.Fprintln(os.Stderr, "warning: incomplete challenge response")
		return Fallback()
	}
	if data.LocationIdentified == "" {
		data.LocationIdentified = "Unknown"
	}
	return data
}

// decodePhoto turns a photo handle into inline image bytes. Handles
// both bare base64 and data: URLs; anything else (such as the demo
// sessions' plain URLs) is rejected.
func decodePhoto(photo stumble.Photo) (llm.ImagePart, error) {
	raw := string(photo)
	if raw == "" {
		return llm.ImagePart{}, errors.New("empty photo")
	}

	mime := "image/jpeg"
	if strings.HasPrefix(raw, "data:") {
		header, rest, ok := strings.Cut(raw, ",")
		if !ok {
			return llm.ImagePart{}, errors.New("malformed data URL")
		}
		header = strings.TrimPrefix(header, "data:")
		if m, _, found := strings.Cut(header, ";"); found && m != "" {
			mime = m
		}
		raw = rest
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return llm.ImagePart{}, fmt.Errorf("decode base64: %w", err)
	}
	return llm.ImagePart{MIMEType: mime, Data: data}, nil
}
