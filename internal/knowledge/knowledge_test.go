package knowledge

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarndearc/learners-coder-mcp/internal/intent"
)

func loadBase(t *testing.T) *Base {
	t.Helper()
	b, err := Load()
	require.NoError(t, err)
	return b
}

func TestLoad_Embedded(t *testing.T) {
	b := loadBase(t)

	assert.Equal(t, "RESTful API Design", b.Tools("api-design")["category"])
	assert.Equal(t, "Full-Stack React Framework", b.Tools("nextjs-project")["category"])
	assert.NotEmpty(t, b.CompanyStacks())
	assert.NotEmpty(t, b.ProductionRecommendations())
	assert.NotEmpty(t, b.LibraryComparison())
	assert.NotEmpty(t, b.Libraries())
	assert.NotEmpty(t, b.Performance())
	assert.NotEmpty(t, b.Security())
	assert.NotEmpty(t, b.Scalability())
	assert.NotEmpty(t, b.Service().HealthCapabilities)
}

func TestConcepts_ExamplesKeepInlineColons(t *testing.T) {
	b := loadBase(t)

	examples := map[string]string{}
	for _, key := range []intent.Key{"express-rest-api", "react-spa"} {
		for _, c := range b.Concepts(key) {
			examples[c.Title] = c.Example
		}
	}
	assert.Equal(t,
		"app.use((err, req, res, next) => res.status(err.status ?? 500).json({ error: err.message }))",
		examples["Centralized Error Handling"])
	assert.Equal(t,
		"const { data } = useQuery({ queryKey: ['todos'], queryFn: fetchTodos })",
		examples["Server State vs Client State"])
}

func TestTools_FallsBackToDefault(t *testing.T) {
	b := loadBase(t)

	assert.Equal(t, b.Tools("api-design"), b.Tools("cobol-mainframe"))
	assert.False(t, b.HasTools("cobol-mainframe"))
	assert.True(t, b.HasTools("proxmox-api"))
}

func TestTechStack_FallsBackToDefault(t *testing.T) {
	b := loadBase(t)

	def := b.TechStack("full-stack-project")
	assert.Equal(t, "JWT with refresh tokens", def["auth"])
	assert.Equal(t, def, b.TechStack(intent.Key(intent.GeneralCoding)))
	assert.NotEqual(t, def, b.TechStack("nextjs-project"))
}

func TestEveryToolsKeyResolves(t *testing.T) {
	b := loadBase(t)
	for _, r := range intent.Rules {
		key := intent.NormalizeFor(intent.ConsumerTools, r.Tag)
		assert.NotNil(t, b.Tools(key), "tag %s", r.Tag)
		assert.NotNil(t, b.TechStack(key), "tag %s", r.Tag)
	}
}

func TestQuestionsAndConcepts(t *testing.T) {
	b := loadBase(t)

	q := b.Questions("mern-stack")
	require.Len(t, q, 4)
	assert.Equal(t, "Will data be user-specific or shared?", q[0])

	c := b.Concepts("mern-stack")
	require.Len(t, c, 6)
	assert.Equal(t, "Database Design", c[0].Title)

	assert.NotNil(t, b.Questions("general-coding"))
	assert.Empty(t, b.Questions("general-coding"))
	assert.NotNil(t, b.Concepts("general-coding"))
	assert.Empty(t, b.Concepts("general-coding"))
}

func TestConceptKeysAreReachable(t *testing.T) {
	b := loadBase(t)

	reachable := map[intent.Key]bool{}
	for _, r := range intent.Rules {
		reachable[intent.NormalizeFor(intent.ConsumerConcepts, r.Tag)] = true
	}
	for key := range b.concepts {
		assert.True(t, reachable[intent.Key(key)], "concept key %q has no tag", key)
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	b := loadBase(t)

	q := b.Questions("mern-stack")
	q[0] = "mutated"
	assert.NotEqual(t, "mutated", b.Questions("mern-stack")[0])
}

func TestPayments(t *testing.T) {
	b := loadBase(t)

	gw := b.PaymentGateways()
	for _, id := range []string{"razorpay", "payu", "cashfree", "instamojo", "iyzipay", "stripe"} {
		assert.Contains(t, gw, id)
	}
	assert.Contains(t, b.PaymentRecommendations(), "saas")

	ex := b.IntegrationExample()
	assert.Greater(t, strings.Count(ex.RazorpaySetup.Code, "\n"), 18)
	assert.Equal(t, "https://razorpay.com/docs", ex.RazorpaySetup.Docs)
	assert.NotEmpty(t, ex.PayUSetup.NPM)
}

func TestIntegrationExample_ReturnsCopy(t *testing.T) {
	b := loadBase(t)

	ex := b.IntegrationExample()
	ex.RazorpaySetup.Code = "short"
	assert.NotEqual(t, "short", b.IntegrationExample().RazorpaySetup.Code)
}

func TestProxmoxGuide_ReturnsCopy(t *testing.T) {
	b := loadBase(t)

	g := b.ProxmoxGuide()
	require.NotEmpty(t, g.Authentication.Methods)
	g.Authentication.Methods[0].Example = "changed"

	assert.NotEqual(t, "changed", b.ProxmoxGuide().Authentication.Methods[0].Example)
	assert.Equal(t, "Proxmox Virtual Environment", b.Proxmox()["name"])
}

func TestLoadFS_MissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tools.yaml")
}

func TestLoadFS_MissingDefault(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, name := range []string{
		"stacks.yaml", "enterprise.yaml", "performance.yaml", "libraries.yaml",
		"payments.yaml", "infrastructure.yaml", "teaching.yaml", "service.yaml",
	} {
		data, err := embedded.ReadFile("data/" + name)
		require.NoError(t, err)
		fsys[name] = &fstest.MapFile{Data: data}
	}
	fsys["tools.yaml"] = &fstest.MapFile{Data: []byte("default: nope\ntoolsets:\n  api-design:\n    category: x\n")}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default toolset "nope"`)
}

func TestDefaultIdentity(t *testing.T) {
	id := DefaultIdentity()
	assert.Equal(t, "Learner's Coder", id.Name)
	assert.Equal(t, "1.0.0", id.Version)
	assert.Len(t, id.Principles, 5)

	id.Principles[0] = "changed"
	assert.Equal(t, "Concept-first teaching", DefaultIdentity().Principles[0])
}
