package knowledge

// Identity describes the mentor persona echoed into every response.
type Identity struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Principles  []string `json:"principles"`
}

var identity = Identity{
	Name:        "Learner's Coder",
	Version:     "1.0.0",
	Description: "A coding mentor MCP that teaches concepts, architecture, and patterns instead of giving full solutions.",
	Principles: []string{
		"Concept-first teaching",
		"No complete runnable code",
		"Ask clarifying questions",
		"Use stable industry libraries",
		"Encourage professional structure",
	},
}

// DefaultIdentity returns a copy of the mentor identity.
func DefaultIdentity() Identity {
	out := identity
	out.Principles = append([]string(nil), identity.Principles...)
	return out
}
