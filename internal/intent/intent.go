// Package intent classifies free-text mentor requests into a fixed set of
// intent tags.
//
// Classification is an ordered walk over Rules: the first rule whose
// keywords match wins, and GeneralCoding is returned when nothing matches.
// Rule order encodes priority, not specificity, so it is kept as data that
// tests can inspect.
package intent

import "strings"

// Tag is a discrete intent label derived from a user message.
type Tag string

// Framework and stack intents.
const (
	NextjsFullstack Tag = "nextjs-fullstack"
	ReactSPA        Tag = "react-spa"
	VueProject      Tag = "vue-project"
	SvelteProject   Tag = "svelte-project"
	ExpressRESTAPI  Tag = "express-rest-api"
	FastifyAPI      Tag = "fastify-api"
	MERNStack       Tag = "mern-stack"
)

// Data, API and auth intents.
const (
	PrismaSetup        Tag = "prisma-setup"
	MongoDBSetup       Tag = "mongodb-setup"
	PostgreSQLSetup    Tag = "postgresql-setup"
	DrizzleORMSetup    Tag = "drizzle-orm-setup"
	GraphQLAPI         Tag = "graphql-api"
	RealtimeCollab     Tag = "realtime-collab"
	Authentication     Tag = "authentication"
	NextAuthSetup      Tag = "nextauth-setup"
	ReactQuerySetup    Tag = "react-query-setup"
	EnterpriseDataApp  Tag = "enterprise-dataapp"
	CachingStrategy    Tag = "caching-strategy"
	PerformanceOptim   Tag = "performance-optimization"
	FormHandling       Tag = "form-handling"
	ReactHookFormSetup Tag = "react-hook-form-setup"
	Styling            Tag = "styling"
	ComponentLibrary   Tag = "component-library"
)

// Testing and delivery intents.
const (
	TestingSetup    Tag = "testing-setup"
	E2ETesting      Tag = "e2e-testing"
	JestTesting     Tag = "jest-testing"
	VitestTesting   Tag = "vitest-testing"
	Deployment      Tag = "deployment"
	DockerSetup     Tag = "docker-setup"
	KubernetesSetup Tag = "kubernetes-setup"
	Microservices   Tag = "microservices"
)

// Payment gateway intents.
const (
	RazorpayIntegration  Tag = "razorpay-integration"
	PayUIntegration      Tag = "payu-integration"
	CashfreeIntegration  Tag = "cashfree-integration"
	InstamojoIntegration Tag = "instamojo-integration"
	IndianPaymentGateway Tag = "indian-payment-gateway"
	PaymentGatewaySetup  Tag = "payment-gateway-setup"
	SubscriptionPayments Tag = "subscription-payments"
	InvoicePayment       Tag = "invoice-payment"
)

// Infrastructure intents.
const (
	ProxmoxSetup        Tag = "proxmox-setup"
	ProxmoxVM           Tag = "proxmox-vm"
	ProxmoxContainer    Tag = "proxmox-container"
	ProxmoxAPI          Tag = "proxmox-api"
	InfrastructureSetup Tag = "infrastructure-setup"
	ProxmoxBackup       Tag = "proxmox-backup"
	ProxmoxClustering   Tag = "proxmox-clustering"
)

// GeneralCoding is returned when no rule matches.
const GeneralCoding Tag = "general-coding"

// Rule maps a keyword predicate to a tag. All keywords are lower-case
// substrings. A rule matches when at least one AnyOf keyword is present
// (or AnyOf is empty), every AllOf keyword is present, and no NoneOf
// keyword is present.
type Rule struct {
	Tag    Tag
	AnyOf  []string
	AllOf  []string
	NoneOf []string
}

// Matches reports whether the rule applies to an already lower-cased text.
func (r Rule) Matches(lower string) bool {
	if len(r.AnyOf) > 0 && !containsAny(lower, r.AnyOf...) {
		return false
	}
	for _, kw := range r.AllOf {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return !containsAny(lower, r.NoneOf...)
}

// Rules is the ordered priority table. Earlier rules shadow later ones;
// some later rules are unreachable and stay in place so the order is
// stable for anyone extending the table.
var Rules = []Rule{
	// Frameworks
	{Tag: NextjsFullstack, AnyOf: []string{"next.js", "nextjs"}},
	{Tag: ReactSPA, AnyOf: []string{"react"}, NoneOf: []string{"native"}},
	{Tag: VueProject, AnyOf: []string{"vue"}},
	{Tag: SvelteProject, AnyOf: []string{"svelte"}},
	{Tag: ExpressRESTAPI, AnyOf: []string{"express", "rest api"}},
	{Tag: FastifyAPI, AnyOf: []string{"fastify"}},

	// Full-stack
	{Tag: MERNStack, AnyOf: []string{"mern"}},
	{Tag: NextjsFullstack, AnyOf: []string{"full-stack", "fullstack"}},

	// Databases
	{Tag: PrismaSetup, AnyOf: []string{"prisma"}},
	{Tag: MongoDBSetup, AnyOf: []string{"mongodb", "mongoose"}},
	{Tag: PostgreSQLSetup, AnyOf: []string{"postgresql", "postgres"}},
	{Tag: DrizzleORMSetup, AnyOf: []string{"drizzle"}},

	// APIs
	{Tag: ExpressRESTAPI, AnyOf: []string{"api"}, NoneOf: []string{"api routes"}},
	{Tag: GraphQLAPI, AnyOf: []string{"graphql"}},
	{Tag: RealtimeCollab, AnyOf: []string{"websocket", "real-time", "realtime"}},
	{Tag: RealtimeCollab, AnyOf: []string{"socket"}},

	// Auth
	{Tag: Authentication, AnyOf: []string{"authentication", "auth"}},
	{Tag: Authentication, AnyOf: []string{"jwt"}},
	{Tag: NextAuthSetup, AnyOf: []string{"next-auth", "nextauth"}},

	// Testing
	{Tag: TestingSetup, AnyOf: []string{"test"}},
	{Tag: E2ETesting, AnyOf: []string{"e2e", "end-to-end"}},
	{Tag: JestTesting, AnyOf: []string{"jest"}},
	{Tag: VitestTesting, AnyOf: []string{"vitest"}},

	// Deployment
	{Tag: Deployment, AnyOf: []string{"deploy", "production"}},
	{Tag: DockerSetup, AnyOf: []string{"docker"}},
	{Tag: KubernetesSetup, AnyOf: []string{"kubernetes", "k8s"}},
	{Tag: Microservices, AnyOf: []string{"microservices", "micro"}},

	// Styling
	{Tag: Styling, AnyOf: []string{"tailwind", "css"}},
	{Tag: ComponentLibrary, AnyOf: []string{"shadcn", "component"}},

	// Forms
	{Tag: ReactHookFormSetup, AllOf: []string{"form", "hook"}},
	{Tag: FormHandling, AnyOf: []string{"form"}},

	// Performance
	{Tag: PerformanceOptim, AnyOf: []string{"performance", "optimize"}},
	{Tag: CachingStrategy, AnyOf: []string{"cache"}},

	// Data
	{Tag: EnterpriseDataApp, AnyOf: []string{"large", "big"}, AllOf: []string{"data"}},
	{Tag: ReactQuerySetup, AnyOf: []string{"data fetching", "server state"}},

	// Company / enterprise
	{Tag: EnterpriseDataApp, AnyOf: []string{"enterprise", "scale"}},
	{Tag: NextjsFullstack, AllOf: []string{"startup", "stack"}},
	{Tag: EnterpriseDataApp, AllOf: []string{"company", "stack"}},
	{Tag: EnterpriseDataApp, AnyOf: []string{"production", "production-grade"}},

	// Payment gateways (India)
	{Tag: RazorpayIntegration, AnyOf: []string{"razorpay"}},
	{Tag: PayUIntegration, AnyOf: []string{"payu"}},
	{Tag: CashfreeIntegration, AnyOf: []string{"cashfree"}},
	{Tag: InstamojoIntegration, AnyOf: []string{"instamojo"}},
	{Tag: IndianPaymentGateway, AllOf: []string{"payment", "india"}},
	{Tag: PaymentGatewaySetup, AnyOf: []string{"payment gateway", "payment integration"}},
	{Tag: SubscriptionPayments, AllOf: []string{"subscription", "payment"}},
	{Tag: InvoicePayment, AllOf: []string{"invoice", "payment"}},

	// Infrastructure
	{Tag: ProxmoxSetup, AnyOf: []string{"proxmox"}},
	{Tag: ProxmoxVM, AnyOf: []string{"virtual machine", "vm management"}},
	{Tag: ProxmoxContainer, AllOf: []string{"container", "proxmox"}},
	{Tag: ProxmoxAPI, AllOf: []string{"proxmox", "api"}},
	{Tag: InfrastructureSetup, AnyOf: []string{"virtualization", "infrastructure"}},
	{Tag: ProxmoxBackup, AllOf: []string{"backup", "proxmox"}},
	{Tag: ProxmoxClustering, AllOf: []string{"cluster", "proxmox"}},
}

// Classify returns the tag of the first rule matching message.
// It never fails: unmatched and empty messages map to GeneralCoding.
func Classify(message string) Tag {
	lower := strings.ToLower(message)
	for _, r := range Rules {
		if r.Matches(lower) {
			return r.Tag
		}
	}
	return GeneralCoding
}

// Known reports whether tag is one the classifier can produce.
func Known(tag Tag) bool {
	if tag == GeneralCoding {
		return true
	}
	for _, r := range Rules {
		if r.Tag == tag {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
