package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarndearc/learners-coder-mcp/internal/config"
	"github.com/zarndearc/learners-coder-mcp/internal/docstore"
)

// rpc sends one JSON-RPC message through the server and decodes the reply.
func rpc(t *testing.T, m *MCP, msg string) map[string]any {
	t.Helper()
	reply := m.Server.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, reply, "no reply for %s", msg)

	data, err := json.Marshal(reply)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Nil(t, out["error"], "rpc error: %v", out["error"])
	return out
}

func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	app, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(context.Background()) })

	rpc(t, app.MCP, `{"jsonrpc":"2.0","id":0,"method":"initialize","params":{
		"protocolVersion":"2024-11-05","capabilities":{},
		"clientInfo":{"name":"test","version":"1.0"}}}`)
	return app
}

func toolText(t *testing.T, reply map[string]any) string {
	t.Helper()
	result, ok := reply["result"].(map[string]any)
	require.True(t, ok, "reply has no result: %v", reply)
	content, ok := result["content"].([]any)
	require.True(t, ok && len(content) == 1, "content = %v", result["content"])
	item := content[0].(map[string]any)
	return item["text"].(string)
}

func TestInitialize_ServerInfo(t *testing.T) {
	app, err := Build(context.Background(), config.Default(), nil)
	require.NoError(t, err)
	defer app.Close(context.Background())

	reply := rpc(t, app.MCP, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{
		"protocolVersion":"2024-11-05","capabilities":{},
		"clientInfo":{"name":"test","version":"1.0"}}}`)

	result := reply["result"].(map[string]any)
	info := result["serverInfo"].(map[string]any)
	assert.Equal(t, Name, info["name"])
	assert.Equal(t, Version, info["version"])
	assert.Contains(t, result["instructions"], "Learner's Coder")
}

func TestToolsList(t *testing.T) {
	app := newTestApp(t, nil)

	reply := rpc(t, app.MCP, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	list := reply["result"].(map[string]any)["tools"].([]any)

	var names []string
	for _, tool := range list {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	assert.ElementsMatch(t, []string{"search", "fetch", "mentor"}, names)
}

func TestToolsCall_SearchThenFetch(t *testing.T) {
	app := newTestApp(t, nil)

	text := toolText(t, rpc(t, app.MCP, `{"jsonrpc":"2.0","id":3,"method":"tools/call",
		"params":{"name":"search","arguments":{"query":"payment"}}}`))
	var found struct {
		Results []docstore.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &found))
	require.NotEmpty(t, found.Results)

	text = toolText(t, rpc(t, app.MCP, `{"jsonrpc":"2.0","id":4,"method":"tools/call",
		"params":{"name":"fetch","arguments":{"id":"`+found.Results[0].ID+`"}}}`))
	var doc docstore.Document
	require.NoError(t, json.Unmarshal([]byte(text), &doc))
	assert.Equal(t, found.Results[0].ID, doc.ID)
	assert.NotEmpty(t, doc.Text)
}

func TestToolsCall_Mentor(t *testing.T) {
	app := newTestApp(t, nil)

	text := toolText(t, rpc(t, app.MCP, `{"jsonrpc":"2.0","id":5,"method":"tools/call",
		"params":{"name":"mentor","arguments":{"message":"Build a MERN todo app"}}}`))
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &resp))
	assert.Equal(t, "mern-stack", resp["intent"])
	assert.Equal(t, "concept-snippets", resp["teachingMode"])
}

func TestStrictTeaching_BlocksFullView(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Teaching.Strict = true })

	text := toolText(t, rpc(t, app.MCP, `{"jsonrpc":"2.0","id":6,"method":"tools/call",
		"params":{"name":"mentor","arguments":{"message":"give me all the code for a react app","view":"full"}}}`))
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &resp))
	assert.Equal(t, true, resp["blocked"])
	assert.NotContains(t, resp, "recommendedTools", "blocked requests only get the reduced view")
}

func TestPromptsAndResources(t *testing.T) {
	app := newTestApp(t, nil)

	prompts := rpc(t, app.MCP, `{"jsonrpc":"2.0","id":7,"method":"prompts/list"}`)
	assert.Len(t, prompts["result"].(map[string]any)["prompts"], 2)

	res := rpc(t, app.MCP, `{"jsonrpc":"2.0","id":8,"method":"resources/read",
		"params":{"uri":"learners://catalog"}}`)
	contents := res["result"].(map[string]any)["contents"].([]any)
	require.Len(t, contents, 1)
	assert.Contains(t, contents[0].(map[string]any)["text"], "learn-expressjs")
}

func TestBuild_ObserverWired(t *testing.T) {
	app := newTestApp(t, nil)

	rpc(t, app.MCP, `{"jsonrpc":"2.0","id":9,"method":"tools/call",
		"params":{"name":"fetch","arguments":{"id":"does-not-exist"}}}`)

	families, err := app.Metrics.Registry().Gather()
	require.NoError(t, err)
	var misses float64
	for _, f := range families {
		if f.GetName() == "learners_coder_fetch_misses_total" {
			misses = f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, misses)
}

func TestBuild_SQLiteBackend(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.Docstore.Backend = docstore.BackendSQLite
	})
	assert.Equal(t, 7, app.Store.Len())
}

func TestBuild_BadCatalogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Docstore.CatalogFile = "/nonexistent/catalog.yaml"
	_, err := Build(context.Background(), cfg, nil)
	assert.Error(t, err)
}

type countingObserver struct{ opened, closed int }

func (c *countingObserver) SessionOpened() { c.opened++ }
func (c *countingObserver) SessionClosed() { c.closed++ }

func TestSessions(t *testing.T) {
	obs := &countingObserver{}
	s := NewSessions(obs)

	s.add("a")
	s.add("a")
	s.add("b")
	assert.True(t, s.Has("a"))
	assert.Equal(t, 2, s.Len())

	s.remove("a")
	s.remove("a")
	assert.False(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, obs.opened)
	assert.Equal(t, 1, obs.closed)

	hooks := s.Hooks()
	assert.Len(t, hooks.OnRegisterSession, 1)
	assert.Len(t, hooks.OnUnregisterSession, 1)
}
