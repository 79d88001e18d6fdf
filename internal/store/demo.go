package store

import (
	"time"

	"github.com/elliotskunk/stumble/internal/stumble"
)

// demoSessions returns the starter portfolio shown before the user has
// completed any challenge of their own.
func demoSessions() []stumble.StumbleSession {
	now := time.Now()
	return []stumble.StumbleSession{
		{
			ID:          "demo-1",
			Timestamp:   now.Add(-5 * time.Hour),
			BeforePhoto: "https://unsplash.com/photos/a-modern-dining-area-with-artwork-on-wall-ytlpJqcMvh4",
			AfterPhoto:  "https://raw.githubusercontent.com/elliotskunk/stumble/main/xabi-after.jpg",
			Challenge: &stumble.ChallengeData{
				Title:              "Distorted Face",
				Description:        "Make the most distorted face you can and hold it for 10 seconds.",
				LocationIdentified: "Living Room",
				TimeLimitSeconds:   60,
			},
			Note: "Actually hilarious. Felt stupid but good.",
		},
		{
			ID:          "demo-2",
			Timestamp:   now.Add(-48 * time.Hour),
			BeforePhoto: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=1000&auto=format&fit=crop",
			AfterPhoto:  "https://images.unsplash.com/photo-1599058945522-28d584b6f0ff?q=80&w=1000&auto=format&fit=crop",
			Challenge: &stumble.ChallengeData{
				Title:              "Push to Failure",
				Description:        "Drop down and do pushups until you literally cannot do one more.",
				LocationIdentified: "Gym",
				TimeLimitSeconds:   120,
			},
			Note: "Arms felt like jelly. People looked, but I felt strong.",
		},
		{
			ID:          "demo-3",
			Timestamp:   now.Add(-5 * 24 * time.Hour),
			BeforePhoto: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?q=80&w=1000&auto=format&fit=crop",
			AfterPhoto:  "https://images.unsplash.com/photo-1513364776144-60967b0f800f?q=80&w=1000&auto=format&fit=crop",
			Challenge: &stumble.ChallengeData{
				Title:              "Bad Art Challenge",
				Description:        "Draw the person sitting across from you without looking at the paper.",
				LocationIdentified: "Coffee Shop",
				TimeLimitSeconds:   180,
			},
			Note:      "It looked nothing like him. I showed him and we laughed.",
			IsPrivate: true,
		},
		{
			ID:          "demo-4",
			Timestamp:   now.Add(-24 * time.Hour),
			BeforePhoto: "https://images.unsplash.com/photo-1506126613408-eca07ce68773?q=80&w=1000&auto=format&fit=crop",
			AfterPhoto:  "https://images.unsplash.com/photo-1544367563-12123d8965cd?q=80&w=1000&auto=format&fit=crop",
			Challenge: &stumble.ChallengeData{
				Title:              "Tree Pose Hold",
				Description:        "Hold a tree pose for 2 minutes or until you fall.",
				LocationIdentified: "Park",
				TimeLimitSeconds:   120,
			},
			Note: "Windy day made it hard to balance.",
		},
	}
}
