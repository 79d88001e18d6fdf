// Package challenge turns an environment photo and a user goal into a
// spontaneous micro-challenge. Generation is infallible from the
// caller's perspective: any failure along the way collapses into a
// fixed fallback challenge.
package challenge

import (
	"context"

	"github.com/elliotskunk/stumble/internal/stumble"
)

// Generator produces a micro-challenge for the user's current
// environment. Implementations never return an error; they degrade to
// Fallback() instead.
type Generator interface {
	Generate(ctx context.Context, photo stumble.Photo, goal string) stumble.ChallengeData
}

// Fallback is the challenge served whenever generation fails for any
// reason.
func Fallback() stumble.ChallengeData {
	return stumble.ChallengeData{
		Title:              "Quick Reset",
		Description:        "Do 10 deep breaths or 10 jumping jacks right now.",
		LocationIdentified: "Unknown",
		TimeLimitSeconds:   60,
	}
}

// Static is a Generator that always returns the same challenge. Used
// in tests and when no provider is configured.
type Static struct {
	Challenge stumble.ChallengeData
}

func (s Static) Generate(context.Context, stumble.Photo, string) stumble.ChallengeData {
	return s.Challenge
}
