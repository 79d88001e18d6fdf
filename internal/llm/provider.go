package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends. Stumble's single use is
// vision-grounded structured output: a photo plus a prompt in,
// schema-conforming JSON out.
type Provider interface {
	// Generate sends one request and returns the structured response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Stumble only ever sends a single
	// user turn, but the shape allows history.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON
	// Schema via the provider's structured output support.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Zero means provider default.
	Temperature float64
}

// Message is one conversation turn. A turn may carry inline images
// alongside its text; the environment photo rides here.
type Message struct {
	Role   Role
	Text   string
	Images []ImagePart
}

// ImagePart is an inline image attached to a message.
type ImagePart struct {
	// MIMEType is the encoded image type, e.g. "image/jpeg".
	MIMEType string

	// Data is the raw (decoded) image bytes.
	Data []byte
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "micro-challenge").
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output. With a Schema set this is the
	// validated JSON object.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
