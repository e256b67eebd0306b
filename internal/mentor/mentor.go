// Package mentor assembles mentor responses from the classified intent,
// the teaching policy decision and the knowledge tables.
//
// Assembly is a pure composition over total lookups and never fails. The
// shared knowledge records are placed into the envelope as they are; the
// only fields rewritten (truncated code) live in per-request copies.
package mentor

import (
	"github.com/zarndearc/learners-coder-mcp/internal/intent"
	"github.com/zarndearc/learners-coder-mcp/internal/knowledge"
	"github.com/zarndearc/learners-coder-mcp/internal/policy"
)

// Concept keys layered on top of the intent's own concepts when the raw
// message mentions payments or infrastructure.
const (
	paymentConceptKey        intent.Key = "payment-gateway-setup"
	infrastructureConceptKey intent.Key = "proxmox-setup"
)

// Assembler builds mentor responses. It is safe for concurrent use.
type Assembler struct {
	kb       *knowledge.Base
	policy   *policy.Evaluator
	limits   policy.Limits
	identity knowledge.Identity
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithEvaluator sets the teaching policy evaluator.
func WithEvaluator(e *policy.Evaluator) Option {
	return func(a *Assembler) { a.policy = e }
}

// WithLimits overrides the truncation line budgets.
func WithLimits(l policy.Limits) Option {
	return func(a *Assembler) { a.limits = l }
}

// New creates an Assembler over kb.
func New(kb *knowledge.Base, opts ...Option) *Assembler {
	a := &Assembler{
		kb:       kb,
		policy:   policy.NewEvaluator(false),
		limits:   policy.DefaultLimits(),
		identity: knowledge.DefaultIdentity(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Respond classifies message, evaluates the policy and builds the
// requested view. Requests blocked by a strict policy always get the
// reduced view.
func (a *Assembler) Respond(message string, view View) Response {
	tag := intent.Classify(message)
	decision := a.policy.Evaluate(message)

	if view != ViewFull || decision.Blocked {
		return Response{
			View:     ViewConcepts,
			Intent:   tag,
			Decision: decision,
			Reduced:  a.Reduce(message, tag, decision),
		}
	}
	return Response{
		View:     ViewFull,
		Intent:   tag,
		Decision: decision,
		Full:     a.Assemble(message, tag, decision),
	}
}

// Reduce builds the concept-only view without touching the sections it
// would discard.
func (a *Assembler) Reduce(message string, tag intent.Tag, d policy.Decision) *Reduced {
	return &Reduced{
		Identity:     a.identity,
		Intent:       tag,
		TeachingMode: d.Mode,
		TeachingNote: d.Message,
		Questions:    a.questions(tag),
		Concepts:     a.concepts(message, tag),
		Blocked:      d.Blocked,
	}
}

// Assemble builds the full envelope. In concept-snippets mode the embedded
// code examples are truncated.
func (a *Assembler) Assemble(message string, tag intent.Tag, d policy.Decision) *Envelope {
	toolsKey := intent.NormalizeFor(intent.ConsumerTools, tag)

	env := &Envelope{
		Identity:                  a.identity,
		Intent:                    tag,
		LearningStrategy:          LearningStrategy,
		TeachingMode:              d.Mode,
		TeachingNote:              d.Message,
		Questions:                 a.questions(tag),
		Concepts:                  a.concepts(message, tag),
		RecommendedLibraries:      a.kb.Libraries(),
		RecommendedTools:          a.kb.Tools(toolsKey),
		TechStack:                 a.kb.TechStack(toolsKey),
		CompanyGradeTechStack:     a.kb.CompanyStacks(),
		ProductionRecommendations: a.kb.ProductionRecommendations(),
		LibraryComparisons:        a.kb.LibraryComparison(),
		Performance:               a.kb.Performance(),
		Security:                  a.kb.Security(),
		Scalability:               a.kb.Scalability(),
		Note:                      Note,
	}

	if intent.LooksLikePayment(message) {
		env.PaymentGatewayOptions = &PaymentOptions{
			AvailableGateways:  a.kb.PaymentGateways(),
			Recommendations:    a.kb.PaymentRecommendations(),
			IntegrationExample: a.kb.IntegrationExample(),
		}
	}
	if intent.LooksLikeInfrastructure(message) {
		env.InfrastructureOptions = &InfrastructureOptions{
			ProxmoxVE:        a.kb.Proxmox(),
			IntegrationGuide: a.kb.ProxmoxGuide(),
		}
	}

	if d.Mode == policy.ModeConceptSnippets {
		a.truncate(env)
	}
	return env
}

// truncate shortens the code fields of env. Both sections hold copies
// returned by the knowledge base, so the shared tables stay untouched.
func (a *Assembler) truncate(env *Envelope) {
	if p := env.PaymentGatewayOptions; p != nil {
		setup := &p.IntegrationExample.RazorpaySetup
		setup.Code = policy.TruncateCode(setup.Code, a.limits.CodeLines)
	}
	if inf := env.InfrastructureOptions; inf != nil {
		methods := inf.IntegrationGuide.Authentication.Methods
		for i := range methods {
			methods[i].Example = policy.TruncateCode(methods[i].Example, a.limits.ExampleLines)
		}
	}
}

func (a *Assembler) questions(tag intent.Tag) []string {
	return a.kb.Questions(intent.NormalizeFor(intent.ConsumerConcepts, tag))
}

// concepts returns the intent's concept breakdown, followed by the payment
// and infrastructure breakdowns when the message mentions them and the
// intent does not already resolve to that set.
func (a *Assembler) concepts(message string, tag intent.Tag) []knowledge.Concept {
	key := intent.NormalizeFor(intent.ConsumerConcepts, tag)
	out := a.kb.Concepts(key)
	if key != paymentConceptKey && intent.LooksLikePayment(message) {
		out = append(out, a.kb.Concepts(paymentConceptKey)...)
	}
	if key != infrastructureConceptKey && intent.LooksLikeInfrastructure(message) {
		out = append(out, a.kb.Concepts(infrastructureConceptKey)...)
	}
	return out
}
