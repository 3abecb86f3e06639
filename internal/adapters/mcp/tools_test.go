package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notedock/internal/adapters/filesystem"
	"notedock/internal/adapters/preview"
	"notedock/internal/domain"
)

func setupTestRepo(t *testing.T) *filesystem.Repository {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		filesystem.SidebarFile: `{"/docs/guide/":[{"text":"guide","items":[{"text":"intro","link":"/docs/guide/intro"}]}]}`,
		filesystem.NavFile:     `[{"text":"guide","link":"/docs/guide/"},{"text":"About","link":"/about"}]`,
		filesystem.LandingFile: "---\nlayout: home\nfeatures: []\n---\n",
		"docs/guide/intro.md":  "# Intro\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	repo := filesystem.NewRepository(root)
	t.Cleanup(repo.Wait)
	return repo
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestAddThenTree(t *testing.T) {
	repo := setupTestRepo(t)

	if out, isErr := call(t, addNodeHandler(repo), map[string]any{"name": "Advanced", "parent": "guide"}); isErr {
		t.Fatalf("add_node failed: %s", out)
	}
	if out, isErr := call(t, addDocumentHandler(repo), map[string]any{"name": "tips", "parent": "guide/Advanced"}); isErr {
		t.Fatalf("add_document failed: %s", out)
	}

	out, isErr := call(t, treeHandler(repo), nil)
	if isErr {
		t.Fatalf("tree failed: %s", out)
	}
	for _, want := range []string{"guide -> /docs/guide/", "intro (/docs/guide/intro)", "Advanced/", "tips (/docs/guide/Advanced/tips)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in tree:\n%s", want, out)
		}
	}
}

func TestSaveDocument_RefreshesLanding(t *testing.T) {
	repo := setupTestRepo(t)

	out, isErr := call(t, saveDocumentHandler(repo), map[string]any{"file_path": "/docs/guide/intro.md", "content": "# Intro v2\n"})
	if isErr {
		t.Fatalf("save_document failed: %s", out)
	}
	if strings.Contains(out, "not refreshed") {
		t.Errorf("unexpected refresh failure: %s", out)
	}

	landing, err := os.ReadFile(filepath.Join(repo.Root(), filesystem.LandingFile))
	if err != nil {
		t.Fatalf("failed to read landing page: %v", err)
	}
	if !strings.Contains(string(landing), "link: /docs/guide/intro") {
		t.Errorf("landing page not refreshed:\n%s", landing)
	}
}

func TestSaveDocument_ReportsValidationErrors(t *testing.T) {
	repo := setupTestRepo(t)

	out, isErr := call(t, saveDocumentHandler(repo), map[string]any{"file_path": "/docs/../x.md", "content": "x"})
	if !isErr {
		t.Fatalf("expected tool error, got %s", out)
	}
	if !strings.Contains(out, "path traversal") {
		t.Errorf("unexpected message: %s", out)
	}
}

func TestDeleteNode_MissingNode(t *testing.T) {
	repo := setupTestRepo(t)

	out, isErr := call(t, deleteNodeHandler(repo), map[string]any{"path": "guide/missing"})
	if !isErr || !strings.Contains(out, "not found") {
		t.Errorf("expected not found error, got %v %s", isErr, out)
	}
}

func TestPreview(t *testing.T) {
	repo := setupTestRepo(t)

	out, isErr := call(t, previewHandler(repo, preview.NewRenderer()), map[string]any{"file_path": "/docs/guide/intro.md"})
	if isErr {
		t.Fatalf("preview failed: %s", out)
	}
	if !strings.Contains(out, `<h1 id="intro">Intro</h1>`) {
		t.Errorf("unexpected html: %s", out)
	}
}

func TestRenderTree(t *testing.T) {
	sidebar, err := domain.ParseSidebar([]byte(`{"/docs/a/":[{"text":"a","items":[{"text":"b","items":[]}]}]}`))
	if err != nil {
		t.Fatalf("ParseSidebar failed: %v", err)
	}
	got := RenderTree(&domain.Nav{}, sidebar)
	want := "nav:\n/docs/a/\n  a/\n    b/\n"
	if got != want {
		t.Errorf("RenderTree = %q, want %q", got, want)
	}
}
