package challenge

import "fmt"

const systemPrompt = `You design spontaneous micro-challenges that build resilience, focus, and discipline. You always answer with a single JSON object matching the requested schema.`

const promptTemplate = `Analyze this image which represents the user's current environment.
The user's goal is: %q.

Create a spontaneous "micro-challenge" for them to do RIGHT NOW in this environment.
The mission is to build resilience, focus, and discipline.

IMPORTANT: The challenge must be strictly SOLITARY. Do NOT include social interactions.

Select one of the following TWO categories ONLY:

1. Physical Resilience (Body):
   - "Do pushups until failure."
   - "Hold a wall-sit for 2 minutes."
   - "Do 20 air squats immediately."
   - "Hold a plank as long as possible."
   - "Stand on one leg with eyes closed for 60 seconds."

2. Artistic Expression (Creativity):
   - "Write a 4-line poem about the nearest red object."
   - "Sketch the view in front of you in 60 seconds."
   - "Make a small sculpture using only items on your desk/table."
   - "Invent a fictional backstory for an object near you."
   - "Find a pattern in the room and draw it."

Ensure the challenge is safe, simple, and achievable within 5 minutes.`

// buildPrompt fills the challenge prompt with the user's goal.
func buildPrompt(goal string) string {
	return fmt.Sprintf(promptTemplate, goal)
}
