package mentor

import (
	"encoding/json"

	"github.com/zarndearc/learners-coder-mcp/internal/intent"
	"github.com/zarndearc/learners-coder-mcp/internal/knowledge"
	"github.com/zarndearc/learners-coder-mcp/internal/policy"
)

// Fixed envelope texts.
const (
	LearningStrategy = "concept-first"
	Note             = "You are expected to assemble the final solution. I provide guidance, patterns, and examples only."
)

// View selects how much of the response is returned.
type View string

const (
	// ViewConcepts is the reduced view: identity, intent, policy fields,
	// questions and concepts.
	ViewConcepts View = "concepts"
	// ViewFull is the complete envelope with long code fields truncated.
	ViewFull View = "full"
)

// ParseView maps a request value to a View. Anything other than "full"
// selects the reduced view.
func ParseView(s string) View {
	if View(s) == ViewFull {
		return ViewFull
	}
	return ViewConcepts
}

// PaymentOptions is the payment section of the full envelope.
type PaymentOptions struct {
	AvailableGateways  knowledge.Record             `json:"availableGateways"`
	Recommendations    knowledge.Record             `json:"recommendations"`
	IntegrationExample knowledge.IntegrationExample `json:"integrationExample"`
}

// InfrastructureOptions is the infrastructure section of the full envelope.
type InfrastructureOptions struct {
	ProxmoxVE        knowledge.Record       `json:"proxmoxVE"`
	IntegrationGuide knowledge.ProxmoxGuide `json:"integrationGuide"`
}

// Envelope is the complete mentor response. The optional sections are nil
// (encoded as null) when their keyword predicate does not match.
type Envelope struct {
	Identity                  knowledge.Identity     `json:"identity"`
	Intent                    intent.Tag             `json:"intent"`
	LearningStrategy          string                 `json:"learningStrategy"`
	TeachingMode              policy.Mode            `json:"teachingMode"`
	TeachingNote              string                 `json:"teachingNote"`
	Questions                 []string               `json:"questions"`
	Concepts                  []knowledge.Concept    `json:"concepts"`
	RecommendedLibraries      knowledge.Record       `json:"recommendedLibraries"`
	RecommendedTools          knowledge.Record       `json:"recommendedTools"`
	TechStack                 knowledge.Record       `json:"techStack"`
	CompanyGradeTechStack     knowledge.Record       `json:"companyGradeTechStack"`
	ProductionRecommendations knowledge.Record       `json:"productionRecommendations"`
	LibraryComparisons        knowledge.Record       `json:"libraryComparisons"`
	Performance               knowledge.Record       `json:"performance"`
	Security                  knowledge.Record       `json:"security"`
	Scalability               knowledge.Record       `json:"scalability"`
	PaymentGatewayOptions     *PaymentOptions        `json:"paymentGatewayOptions"`
	InfrastructureOptions     *InfrastructureOptions `json:"infrastructureOptions"`
	Note                      string                 `json:"note"`
}

// Reduced is the default, concept-only response.
type Reduced struct {
	Identity     knowledge.Identity  `json:"identity"`
	Intent       intent.Tag          `json:"intent"`
	TeachingMode policy.Mode         `json:"teachingMode"`
	TeachingNote string              `json:"teachingNote"`
	Questions    []string            `json:"questions"`
	Concepts     []knowledge.Concept `json:"concepts"`
	// Blocked is only set when a strict policy refused the request.
	Blocked bool `json:"blocked,omitempty"`
}

// Response is the result of Respond. Exactly one of Reduced and Full is set.
type Response struct {
	View     View
	Intent   intent.Tag
	Decision policy.Decision
	Reduced  *Reduced
	Full     *Envelope
}

// MarshalJSON encodes whichever view the response carries.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Full != nil {
		return json.Marshal(r.Full)
	}
	return json.Marshal(r.Reduced)
}
