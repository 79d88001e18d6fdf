// Package feed holds the static friends feed. Real social features
// are out of scope; the feed exists so the home view isn't empty.
package feed

// Comment is one reaction on a friend's post.
type Comment struct {
	User string
	Text string
}

// Post is one friend's challenge attempt.
type Post struct {
	ID             string
	User           string
	Age            string
	ChallengeTitle string
	Completed      bool
	Comments       []Comment
}

// Posts returns the static feed, newest first.
func Posts() []Post {
	return []Post{
		{
			ID:             "f1",
			User:           "xabiFR",
			Age:            "2h ago",
			ChallengeTitle: "Sprint down the hallway",
			Completed:      true,
			Comments: []Comment{
				{User: "jake_99", Text: "No way you actually did that!"},
				{User: "maddy.runs", Text: "That face is terrifying lol"},
			},
		},
		{
			ID:             "f2",
			User:           "mikeyway2001",
			Age:            "4h ago",
			ChallengeTitle: "High-five a stranger",
			Completed:      true,
			Comments: []Comment{
				{User: "tommy_gun", Text: "Legend."},
				{User: "sarah_m", Text: "So brave haha I would have died"},
				{User: "alex_c", Text: "The look on their face is priceless"},
			},
		},
		{
			ID:             "f3",
			User:           "krishkrush",
			Age:            "1d ago",
			ChallengeTitle: "Do 10 clapping pushups",
			Completed:      true,
			Comments: []Comment{
				{User: "gym_rat", Text: "Form needs work"},
			},
		},
		{
			ID:             "f4",
			User:           "Marcuspeeps",
			Age:            "5h ago",
			ChallengeTitle: "Scream into the ocean",
			Completed:      false,
			Comments: []Comment{
				{User: "sarah_j", Text: "You missed out! It was freeing."},
				{User: "marcus_g", Text: "Too many people watching"},
			},
		},
	}
}
