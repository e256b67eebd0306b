package intent

// Key is the canonical form of a Tag for one knowledge consumer.
type Key string

// AliasTable maps tags to the key a consumer indexes its table with.
// Tags without an entry pass through unchanged.
type AliasTable map[Tag]Key

// Consumer names a knowledge lookup that groups intents its own way.
type Consumer string

const (
	// ConsumerTools covers the recommended-tools and tech-stack tables.
	ConsumerTools Consumer = "tools"
	// ConsumerConcepts covers clarifying questions and concept breakdowns.
	ConsumerConcepts Consumer = "concepts"
)

// ToolsAliases aligns classifier output with the tools and tech-stack keys.
var ToolsAliases = AliasTable{
	NextjsFullstack: "nextjs-project",
	ReactSPA:        "react-project",
	ExpressRESTAPI:  "api-design",
	MERNStack:       "mern-project",
	NextAuthSetup:   "authentication",
	PrismaSetup:     "database-design",
	MongoDBSetup:    "database-design",
	PostgreSQLSetup: "database-design",
	DrizzleORMSetup: "database-design",
	JestTesting:     "testing-setup",
	VitestTesting:   "testing-setup",
	DockerSetup:     "deployment",
	KubernetesSetup: "deployment",

	RazorpayIntegration:  "payment-gateway-setup",
	PayUIntegration:      "payment-gateway-setup",
	CashfreeIntegration:  "payment-gateway-setup",
	InstamojoIntegration: "payment-gateway-setup",
	SubscriptionPayments: "payment-gateway-setup",
	InvoicePayment:       "payment-gateway-setup",

	ProxmoxVM:           "proxmox-setup",
	ProxmoxContainer:    "proxmox-setup",
	ProxmoxBackup:       "proxmox-setup",
	ProxmoxClustering:   "proxmox-setup",
	InfrastructureSetup: "proxmox-setup",
}

// ConceptAliases groups intents that share a concept breakdown.
var ConceptAliases = AliasTable{
	FastifyAPI:         "express-rest-api",
	GraphQLAPI:         "express-rest-api",
	NextAuthSetup:      "authentication",
	VueProject:         "react-spa",
	SvelteProject:      "react-spa",
	ReactQuerySetup:    "react-spa",
	ReactHookFormSetup: "react-spa",
	FormHandling:       "react-spa",

	RazorpayIntegration:  "payment-gateway-setup",
	PayUIntegration:      "payment-gateway-setup",
	CashfreeIntegration:  "payment-gateway-setup",
	InstamojoIntegration: "payment-gateway-setup",
	IndianPaymentGateway: "payment-gateway-setup",
	SubscriptionPayments: "payment-gateway-setup",
	InvoicePayment:       "payment-gateway-setup",

	ProxmoxVM:           "proxmox-setup",
	ProxmoxContainer:    "proxmox-setup",
	ProxmoxAPI:          "proxmox-setup",
	ProxmoxBackup:       "proxmox-setup",
	ProxmoxClustering:   "proxmox-setup",
	InfrastructureSetup: "proxmox-setup",
}

// Aliases indexes every consumer's alias table.
var Aliases = map[Consumer]AliasTable{
	ConsumerTools:    ToolsAliases,
	ConsumerConcepts: ConceptAliases,
}

// Normalize resolves tag through table. It is a pure lookup; aliases
// never chain, so normalizing twice yields the same key.
func Normalize(tag Tag, table AliasTable) Key {
	if key, ok := table[tag]; ok {
		return key
	}
	return Key(tag)
}

// NormalizeFor resolves tag with the named consumer's table. Unknown
// consumers pass the tag through.
func NormalizeFor(consumer Consumer, tag Tag) Key {
	return Normalize(tag, Aliases[consumer])
}
