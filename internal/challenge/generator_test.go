package challenge

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/elliotskunk/stumble/internal/llm"
	"github.com/elliotskunk/stumble/internal/stumble"
)

// tinyJPEG is a stand-in photo payload; content doesn't matter, only
// that it decodes.
var tinyJPEG = stumble.Photo("data:image/jpeg;base64," +
	base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF, 0xD9}))

func TestGenerateParsesStructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Wall Sit",
			"description": "Hold a wall-sit for 2 minutes.",
			"locationIdentified": "Office",
			"timeLimitSeconds": 120
		}`),
	})
	g := NewLLMGenerator(mock)

	got := g.Generate(context.Background(), tinyJPEG, "build discipline")

	if got.Title != "Wall Sit" || got.LocationIdentified != "Office" || got.TimeLimitSeconds != 120 {
		t.Errorf("unexpected challenge: %+v", got)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "micro-challenge" {
		t.Error("request should carry the micro-challenge schema")
	}
	if len(req.Messages) != 1 || len(req.Messages[0].Images) != 1 {
		t.Fatal("request should carry the environment photo inline")
	}
	if req.Messages[0].Images[0].MIMEType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", req.Messages[0].Images[0].MIMEType)
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	g := NewLLMGenerator(mock)

	got := g.Generate(context.Background(), tinyJPEG, "any goal")

	if got != Fallback() {
		t.Errorf("provider error should yield the fallback, got %+v", got)
	}
}

func TestGenerateFallsBackOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": `),
	})
	g := NewLLMGenerator(mock)

	if got := g.Generate(context.Background(), tinyJPEG, "goal"); got != Fallback() {
		t.Errorf("malformed response should yield the fallback, got %+v", got)
	}
}

func TestGenerateFallsBackOnIncompleteChallenge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "X", "description": "", "locationIdentified": "Gym", "timeLimitSeconds": 60}`),
	})
	g := NewLLMGenerator(mock)

	if got := g.Generate(context.Background(), tinyJPEG, "goal"); got != Fallback() {
		t.Errorf("incomplete response should yield the fallback, got %+v", got)
	}
}

func TestGenerateFallsBackOnUndecodablePhoto(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewLLMGenerator(mock)

	got := g.Generate(context.Background(), "https://example.com/photo.jpg", "goal")

	if got != Fallback() {
		t.Errorf("undecodable photo should yield the fallback, got %+v", got)
	}
	if len(mock.Calls) != 0 {
		t.Error("provider must not be called when the photo cannot be decoded")
	}
}

func TestFallbackIsStable(t *testing.T) {
	f := Fallback()
	want := stumble.ChallengeData{
		Title:              "Quick Reset",
		Description:        "Do 10 deep breaths or 10 jumping jacks right now.",
		LocationIdentified: "Unknown",
		TimeLimitSeconds:   60,
	}
	if f != want {
		t.Errorf("fallback drifted: %+v", f)
	}
}

func TestDecodePhotoVariants(t *testing.T) {
	plain := stumble.Photo(base64.StdEncoding.EncodeToString([]byte("img")))
	img, err := decodePhoto(plain)
	if err != nil {
		t.Fatalf("bare base64 should decode: %v", err)
	}
	if string(img.Data) != "img" || img.MIMEType != "image/jpeg" {
		t.Errorf("unexpected decode result: %+v", img)
	}

	png := stumble.Photo("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("p")))
	img, err = decodePhoto(png)
	if err != nil {
		t.Fatalf("data URL should decode: %v", err)
	}
	if img.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", img.MIMEType)
	}

	if _, err := decodePhoto(""); err == nil {
		t.Error("empty photo should fail")
	}
}
