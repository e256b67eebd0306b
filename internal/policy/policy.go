// Package policy decides how much of a mentor response is exposed.
//
// The mentor teaches concepts and small snippets; it does not hand out
// complete implementations. Every request resolves to ModeConceptSnippets,
// and a request asking for full code only changes the note returned to the
// user. Strict mode restores the older hard gate where such requests are
// marked blocked.
package policy

import "strings"

// Mode controls which response view is allowed.
type Mode string

// ModeConceptSnippets limits output to concepts and short code snippets.
const ModeConceptSnippets Mode = "concept-snippets"

// Notes returned alongside the teaching mode.
const (
	RefusalMessage = "I won't provide complete implementations. I'll help you understand concepts, " +
		"architecture, and patterns so you can build it yourself."
	DefaultMessage = "Let's learn this step by step. I'll explain the concepts and show small snippets; " +
		"you assemble the final solution."
)

// FullImplementationPhrases signal a request for a complete solution.
var FullImplementationPhrases = []string{
	"full code",
	"complete project",
	"entire project",
	"whole code",
	"complete app",
	"give me all the code",
}

// Decision is the outcome of evaluating a message.
type Decision struct {
	Blocked bool   `json:"blocked"`
	Mode    Mode   `json:"mode"`
	Message string `json:"message"`
}

// Evaluator applies the teaching policy. The zero value is ready to use.
type Evaluator struct {
	// Strict marks full-implementation requests as blocked.
	Strict bool
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(strict bool) *Evaluator {
	return &Evaluator{Strict: strict}
}

// Evaluate derives a Decision from the raw message. It never fails.
func (e *Evaluator) Evaluate(message string) Decision {
	if WantsFullImplementation(message) {
		return Decision{
			Blocked: e != nil && e.Strict,
			Mode:    ModeConceptSnippets,
			Message: RefusalMessage,
		}
	}
	return Decision{Mode: ModeConceptSnippets, Message: DefaultMessage}
}

// WantsFullImplementation reports whether message asks for a complete
// implementation.
func WantsFullImplementation(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range FullImplementationPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
