package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassify_Table(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Tag
	}{
		{"empty", "", GeneralCoding},
		{"no keywords", "hello there, how are you?", GeneralCoding},
		{"nextjs dotted", "I am building a SaaS with Next.js", NextjsFullstack},
		{"nextjs plain", "nextjs app router question", NextjsFullstack},
		{"react", "Building a React dashboard", ReactSPA},
		{"vue", "migrating to Vue 3", VueProject},
		{"svelte", "svelte stores", SvelteProject},
		{"express", "Express middleware ordering", ExpressRESTAPI},
		{"rest api", "designing a rest api", ExpressRESTAPI},
		{"fastify", "fastify plugins", FastifyAPI},
		{"mern", "MERN todo app", MERNStack},
		{"fullstack", "a full-stack side project", NextjsFullstack},
		{"prisma", "prisma migrations", PrismaSetup},
		{"mongoose", "mongoose schema design", MongoDBSetup},
		{"postgres", "postgres indexing", PostgreSQLSetup},
		{"drizzle", "drizzle relations", DrizzleORMSetup},
		{"generic api", "versioning an api", ExpressRESTAPI},
		{"graphql", "graphql resolvers", GraphQLAPI},
		{"websocket", "websocket chat", RealtimeCollab},
		{"socket", "socket.io rooms", RealtimeCollab},
		{"auth", "adding auth to my app", Authentication},
		{"jwt", "jwt expiry", Authentication},
		{"testing", "how to test hooks", TestingSetup},
		{"e2e", "e2e suite with playwright", E2ETesting},
		{"jest", "jest mocks", JestTesting},
		{"vitest", "vitest setup", TestingSetup},
		{"deploy", "deploy to vercel", Deployment},
		{"docker", "docker compose networking", DockerSetup},
		{"k8s", "k8s ingress", KubernetesSetup},
		{"micro", "splitting into microservices", Microservices},
		{"tailwind", "tailwind theming", Styling},
		{"shadcn", "shadcn dialog", ComponentLibrary},
		{"form hook", "form state with a hook", ReactHookFormSetup},
		{"form", "multi-step form", FormHandling},
		{"optimize", "optimize bundle size", PerformanceOptim},
		{"cache", "cache invalidation", CachingStrategy},
		{"big data", "big data pipeline", EnterpriseDataApp},
		{"server state", "managing server state", ReactQuerySetup},
		{"enterprise", "enterprise dashboard", EnterpriseDataApp},
		{"startup stack", "startup stack advice", NextjsFullstack},
		{"company stack", "what is a good company stack", EnterpriseDataApp},
		{"razorpay", "integrate razorpay payments", RazorpayIntegration},
		{"payu", "PayU checkout", PayUIntegration},
		{"cashfree", "cashfree payouts", CashfreeIntegration},
		{"instamojo", "instamojo links", InstamojoIntegration},
		{"india", "accepting payment in india", IndianPaymentGateway},
		{"gateway", "choosing a payment gateway", PaymentGatewaySetup},
		{"subscription", "subscription payment flow", SubscriptionPayments},
		{"invoice", "invoice payment reminders", InvoicePayment},
		{"proxmox", "proxmox cluster with 3 servers", ProxmoxSetup},
		{"virtual machine", "spin up a virtual machine per customer", ProxmoxVM},
		{"virtualization", "virtualization basics", InfrastructureSetup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassify_RuleOrderDecidesOverlaps(t *testing.T) {
	msg := "I want a react express api"

	reactIdx, expressIdx := -1, -1
	for i, r := range Rules {
		if r.Tag == ReactSPA && reactIdx < 0 {
			reactIdx = i
		}
		if r.Tag == ExpressRESTAPI && expressIdx < 0 {
			expressIdx = i
		}
	}
	require.GreaterOrEqual(t, reactIdx, 0)
	require.GreaterOrEqual(t, expressIdx, 0)

	want := ExpressRESTAPI
	if reactIdx < expressIdx {
		want = ReactSPA
	}

	for i := 0; i < 50; i++ {
		assert.Equal(t, want, Classify(msg))
	}
	assert.Equal(t, ReactSPA, want)
}

func TestClassify_NegativeConditions(t *testing.T) {
	assert.NotEqual(t, ReactSPA, Classify("building a react native app"))
	assert.Equal(t, GeneralCoding, Classify("building a react native app"))

	// "api routes" suppresses the generic api rule.
	assert.NotEqual(t, ExpressRESTAPI, Classify("where do api routes live"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("NEXT.JS"), Classify("next.js"))
	assert.Equal(t, RazorpayIntegration, Classify("RAZORPAY"))
}

func TestClassify_ShadowedRulesKeepPriority(t *testing.T) {
	// The generic "api" rule sits above the proxmox rules.
	assert.Equal(t, ExpressRESTAPI, Classify("proxmox api tokens"))
	// "proxmox" alone wins over the container/backup/cluster combinations.
	assert.Equal(t, ProxmoxSetup, Classify("proxmox backup schedule"))
}

func TestClassify_IsTotal(t *testing.T) {
	inputs := []string{"", " ", "🙂", "?", "\n\t", "react", "proxmox", "zzz"}
	for _, in := range inputs {
		assert.True(t, Known(Classify(in)), "Classify(%q) produced unknown tag", in)
	}
}

func TestRule_Matches(t *testing.T) {
	r := Rule{Tag: EnterpriseDataApp, AnyOf: []string{"large", "big"}, AllOf: []string{"data"}}
	assert.True(t, r.Matches("large data set"))
	assert.False(t, r.Matches("large files"))
	assert.False(t, r.Matches("data model"))

	allOnly := Rule{Tag: InvoicePayment, AllOf: []string{"invoice", "payment"}}
	assert.True(t, allOnly.Matches("invoice payment"))
	assert.False(t, allOnly.Matches("invoice"))
}

func TestRules_KeywordsAreLowerCase(t *testing.T) {
	for i, r := range Rules {
		for _, set := range [][]string{r.AnyOf, r.AllOf, r.NoneOf} {
			for _, kw := range set {
				assert.Equal(t, kw, lowerASCII(kw), "rule %d (%s) keyword %q", i, r.Tag, kw)
			}
		}
		assert.True(t, len(r.AnyOf)+len(r.AllOf) > 0, "rule %d (%s) has no positive keywords", i, r.Tag)
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(GeneralCoding))
	assert.True(t, Known(ProxmoxClustering))
	assert.False(t, Known("cobol-mainframe"))
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
