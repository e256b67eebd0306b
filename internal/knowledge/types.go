package knowledge

// Record is an opaque knowledge entry decoded from the embedded tables.
// Records are shared between requests and must not be mutated.
type Record = map[string]any

// Concept is one entry of a concept breakdown.
type Concept struct {
	Title       string `yaml:"title" json:"title"`
	Explanation string `yaml:"explanation" json:"explanation"`
	Example     string `yaml:"example" json:"example"`
}

// SetupGuide describes how to wire one payment gateway SDK. Code may hold
// a multi-line snippet that is truncated in concept-snippets mode.
type SetupGuide struct {
	NPM          string `yaml:"npm" json:"npm,omitempty"`
	Docs         string `yaml:"docs" json:"docs,omitempty"`
	Code         string `yaml:"code" json:"code,omitempty"`
	Dashboard    string `yaml:"dashboard" json:"dashboard,omitempty"`
	APIDocs      string `yaml:"apiDocs" json:"apiDocs,omitempty"`
	APIReference string `yaml:"apiReference" json:"apiReference,omitempty"`
	TestCards    string `yaml:"testCards" json:"testCards,omitempty"`
}

// IntegrationExample groups the Indian gateway setup guides.
type IntegrationExample struct {
	RazorpaySetup SetupGuide `yaml:"razorpaySetup" json:"razorpaySetup"`
	PayUSetup     SetupGuide `yaml:"payuSetup" json:"payuSetup"`
	CashfreeSetup SetupGuide `yaml:"cashfreeSetup" json:"cashfreeSetup"`
}

// AuthMethod is a Proxmox API authentication method with a short example.
type AuthMethod struct {
	Type    string `yaml:"type" json:"type"`
	Docs    string `yaml:"docs" json:"docs"`
	Example string `yaml:"example" json:"example"`
}

// AuthGuide lists the Proxmox API authentication methods.
type AuthGuide struct {
	Title     string       `yaml:"title" json:"title"`
	Methods   []AuthMethod `yaml:"methods" json:"methods"`
	GuideLink string       `yaml:"guideLink" json:"guideLink"`
}

// ProxmoxGuide is the Proxmox VE integration guide.
type ProxmoxGuide struct {
	Authentication AuthGuide         `yaml:"authentication" json:"authentication"`
	CommonTasks    map[string]string `yaml:"commonTasks" json:"commonTasks"`
	Resources      map[string]string `yaml:"resources" json:"resources"`
}

// clone returns a copy whose Methods slice is not shared with g.
// The string maps are read-only and stay shared.
func (g ProxmoxGuide) clone() ProxmoxGuide {
	out := g
	out.Authentication.Methods = append([]AuthMethod(nil), g.Authentication.Methods...)
	return out
}

// ServiceInfo holds the descriptive lists echoed by the HTTP info endpoints.
type ServiceInfo struct {
	Description           string   `yaml:"description" json:"description"`
	Capabilities          []string `yaml:"capabilities" json:"capabilities"`
	HealthCapabilities    []string `yaml:"healthCapabilities" json:"healthCapabilities"`
	PaymentGateways       []string `yaml:"paymentGateways" json:"paymentGateways"`
	InfrastructureSupport []string `yaml:"infrastructureSupport" json:"infrastructureSupport"`
}
