package congestion

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func newToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is %T, want mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

// TestNewCatalogShape checks the registered identity, tools, resource, and
// prompt of the congestion server.
func TestNewCatalogShape(t *testing.T) {
	cat := NewCatalog(NewClient())

	if cat.Name() != ServerName || cat.Version() != ServerVersion {
		t.Errorf("catalog identity = %s/%s, want %s/%s", cat.Name(), cat.Version(), ServerName, ServerVersion)
	}

	wantTools := []string{ToolLookup, ToolLookupMultiple}
	tools := cat.Tools()
	if len(tools) != len(wantTools) {
		t.Fatalf("len(Tools()) = %d, want %d", len(tools), len(wantTools))
	}
	for i, want := range wantTools {
		if tools[i].Tool.Name != want {
			t.Errorf("Tools()[%d] = %q, want %q", i, tools[i].Tool.Name, want)
		}
	}

	if resources := cat.Resources(); len(resources) != 1 || resources[0].Resource.URI != DocsURI {
		t.Errorf("Resources() = %v, want a single entry for %s", resources, DocsURI)
	}
	if prompts := cat.Prompts(); len(prompts) != 1 || prompts[0].Prompt.Name != PromptName {
		t.Errorf("Prompts() = %v, want a single entry for %s", prompts, PromptName)
	}
	if cat.BuildServer() == nil {
		t.Error("BuildServer() = nil")
	}
}

// TestHandleLookup checks the happy path and the upstream error surface.
func TestHandleLookup(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(echoUpstream))
	handler := handleLookup(client)

	res, err := handler(context.Background(), newToolRequest(ToolLookup, map[string]any{
		"name": "Alpha",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if res.IsError {
		t.Fatalf("handler returned tool error: %s", resultText(t, res))
	}
	if got := resultText(t, res); !strings.HasPrefix(got, "Alpha congestion level:") {
		t.Errorf("handler = %q, want an Alpha report", got)
	}

	failing := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	res, err = handleLookup(failing)(context.Background(), newToolRequest(ToolLookup, nil))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !res.IsError {
		t.Fatal("handler did not surface the upstream failure")
	}
	if got := resultText(t, res); !strings.Contains(got, "upstream failure") {
		t.Errorf("handler error text = %q, want the upstream failure message", got)
	}
}

// TestHandleLookupMultiple checks argument coercion and the batch report.
func TestHandleLookupMultiple(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(echoUpstream))
	handler := handleLookupMultiple(client)

	res, err := handler(context.Background(), newToolRequest(ToolLookupMultiple, map[string]any{
		"names": []any{"Alpha", "Beta"},
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if res.IsError {
		t.Fatalf("handler returned tool error: %s", resultText(t, res))
	}

	got := resultText(t, res)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("report has %d lines, want 2:\n%s", len(lines), got)
	}
	for i, prefix := range []string{"- Alpha", "- Beta"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

// TestHandleLookupMultipleEmpty checks that an empty batch is a successful
// empty report.
func TestHandleLookupMultipleEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(echoUpstream))

	res, err := handleLookupMultiple(client)(context.Background(), newToolRequest(ToolLookupMultiple, map[string]any{
		"names": []any{},
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if res.IsError {
		t.Fatalf("handler returned tool error: %s", resultText(t, res))
	}
	if got := resultText(t, res); got != "" {
		t.Errorf("handler = %q, want empty report", got)
	}
}

// TestHandleLookupMultipleBadArguments checks the names validation.
func TestHandleLookupMultipleBadArguments(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(echoUpstream))
	handler := handleLookupMultiple(client)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			name: "missing names",
			args: map[string]any{},
			want: "missing required argument",
		},
		{
			name: "names is not an array",
			args: map[string]any{"names": "Alpha"},
			want: "must be an array of strings",
		},
		{
			name: "names holds a non-string",
			args: map[string]any{"names": []any{"Alpha", 7.0}},
			want: "must contain only strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handler(context.Background(), newToolRequest(ToolLookupMultiple, tt.args))
			if err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if !res.IsError {
				t.Fatalf("handler = %s, want tool error", resultText(t, res))
			}
			if got := resultText(t, res); !strings.Contains(got, tt.want) {
				t.Errorf("handler error text = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestHandleReadme checks the docs resource content type and body.
func TestHandleReadme(t *testing.T) {
	contents, err := handleReadme(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleReadme() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("len(contents) = %d, want 1", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want mcp.TextResourceContents", contents[0])
	}
	if text.URI != DocsURI || text.MIMEType != "text/markdown" {
		t.Errorf("resource identity = %s (%s), want %s (text/markdown)", text.URI, text.MIMEType, DocsURI)
	}
	for _, tool := range []string{ToolLookup, ToolLookupMultiple} {
		if !strings.Contains(text.Text, tool) {
			t.Errorf("readme does not mention %s", tool)
		}
	}
}
