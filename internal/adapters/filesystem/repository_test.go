package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"notedock/internal/domain"
)

const testSidebar = `{
  "/docs/guide/": [
    {
      "text": "guide",
      "link": "/docs/guide/index",
      "collapsed": false,
      "items": [
        {
          "text": "intro"
        },
        {
          "text": "setup",
          "link": "/docs/guide/setup"
        }
      ]
    }
  ]
}`

const testNav = `[
  {
    "text": "guide",
    "link": "/docs/guide/"
  },
  {
    "text": "About",
    "link": "/about"
  }
]`

const testLanding = `---
layout: home
hero:
  name: Notes
features: []
---

# Home

Body text.
`

type countingReloader struct {
	mu sync.Mutex
	n  int
}

func (c *countingReloader) Trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *countingReloader) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// stepClock returns a time one second later on every call
type stepClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *stepClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

func setupTestSite(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		SidebarFile:           testSidebar,
		NavFile:               testNav,
		LandingFile:           testLanding,
		"docs/guide/index.md": "# guide\n",
		"docs/guide/setup.md": "old setup\n",
		"docs/guide/backups/setup_20250101-000000.000.md": "ancient\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return root
}

func newTestRepo(t *testing.T) (*Repository, *countingReloader, *stepClock) {
	t.Helper()
	reloader := &countingReloader{}
	clock := &stepClock{cur: time.Date(2025, 5, 1, 10, 0, 0, 0, time.Local)}
	repo := NewRepository(setupTestSite(t), WithReloader(reloader), WithClock(clock.now))
	t.Cleanup(repo.Wait)
	return repo, reloader, clock
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestSaveDocument_NewDocumentSetsLink(t *testing.T) {
	repo, reloader, _ := newTestRepo(t)

	res, err := repo.SaveDocument("/docs/guide/intro.md", "")
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	repo.Wait()

	if !res.Created {
		t.Error("expected Created")
	}
	if got := readFile(t, res.FilePath); got != "# intro\n" {
		t.Errorf("unexpected placeholder content: %q", got)
	}

	sidebar, err := repo.Sidebar()
	if err != nil {
		t.Fatalf("Sidebar failed: %v", err)
	}
	node, err := sidebar.Find([]string{"guide", "intro"})
	if err != nil {
		t.Fatalf("node not found: %v", err)
	}
	if node.Link != "/docs/guide/intro" {
		t.Errorf("expected link /docs/guide/intro, got %q", node.Link)
	}

	backups, _ := repo.backups.List(res.FilePath)
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %v", backups)
	}
	if reloader.count() != 1 {
		t.Errorf("expected one reload, got %d", reloader.count())
	}
}

func TestSaveDocument_ExistingDocumentIsBackedUp(t *testing.T) {
	repo, reloader, _ := newTestRepo(t)

	res, err := repo.SaveDocument("/docs/guide/setup.md", "new setup\n")
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	repo.Wait()

	if res.Created {
		t.Error("did not expect Created")
	}
	if got := readFile(t, res.FilePath); got != "new setup\n" {
		t.Errorf("unexpected content: %q", got)
	}

	backup := filepath.Join(repo.ContentDir(), "guide", domain.BackupDir, "setup_"+res.Timestamp+".md")
	if got := readFile(t, backup); got != "old setup\n" {
		t.Errorf("unexpected backup content: %q", got)
	}
	if reloader.count() != 0 {
		t.Errorf("content-only save must not reload, got %d", reloader.count())
	}
}

func TestSaveDocument_KeepsTenNewestBackups(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	var stamps []string
	for i := 0; i < 13; i++ {
		res, err := repo.SaveDocument("/docs/guide/setup.md", strings.Repeat("x", i))
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		stamps = append(stamps, res.Timestamp)
	}
	repo.Wait()

	backups, err := repo.backups.List(filepath.Join(repo.ContentDir(), "guide", "setup.md"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != domain.MaxBackups {
		t.Fatalf("expected %d backups, got %d: %v", domain.MaxBackups, len(backups), backups)
	}
	for i, name := range backups {
		want := domain.BackupName("setup.md", stamps[len(stamps)-1-i])
		if name != want {
			t.Errorf("backups[%d] = %s, want %s", i, name, want)
		}
	}
}

func TestSaveDocument_SameMillisecondKeepsBothBackups(t *testing.T) {
	fixed := time.Date(2025, 5, 1, 10, 0, 0, 0, time.Local)
	repo := NewRepository(setupTestSite(t), WithClock(func() time.Time { return fixed }))
	t.Cleanup(repo.Wait)

	for _, content := range []string{"first\n", "second\n"} {
		if _, err := repo.SaveDocument("/docs/guide/setup.md", content); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	repo.Wait()

	doc := filepath.Join(repo.ContentDir(), "guide", "setup.md")
	backups, err := repo.backups.List(doc)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	got := make(map[string]bool)
	for _, name := range backups {
		got[readFile(t, filepath.Join(filepath.Dir(doc), domain.BackupDir, name))] = true
	}
	if !got["old setup\n"] || !got["first\n"] {
		t.Errorf("expected both prior versions backed up, got %v", backups)
	}
}

func TestSaveDocument_MissingNodeFails(t *testing.T) {
	repo, reloader, _ := newTestRepo(t)
	before := readFile(t, filepath.Join(repo.Root(), SidebarFile))

	_, err := repo.SaveDocument("/docs/guide/ghost.md", "boo")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(repo.ContentDir(), "guide", "ghost.md")); !os.IsNotExist(err) {
		t.Error("orphan document was written")
	}
	if after := readFile(t, filepath.Join(repo.Root(), SidebarFile)); after != before {
		t.Error("sidebar changed")
	}
	if reloader.count() != 0 {
		t.Error("unexpected reload")
	}
}

func TestSaveDocument_RejectsInvalidPath(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	_, err := repo.SaveDocument("/docs/../index.md", "x")
	if !errors.Is(err, domain.ErrPathTraversal) {
		t.Errorf("expected ErrPathTraversal, got %v", err)
	}
}

func TestAddNodeThenAddDocument(t *testing.T) {
	repo, reloader, _ := newTestRepo(t)

	if err := repo.AddNode("Advanced", []string{"guide"}); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	link, err := repo.AddDocument("tips", []string{"guide", "Advanced"})
	if err != nil {
		t.Fatalf("AddDocument failed: %v", err)
	}
	if link != "/docs/guide/Advanced/tips" {
		t.Errorf("unexpected link: %s", link)
	}

	sidebar, _ := repo.Sidebar()
	node, err := sidebar.Find([]string{"guide", "Advanced", "tips"})
	if err != nil {
		t.Fatalf("document node not found: %v", err)
	}
	if node.Link != link {
		t.Errorf("unexpected node link: %s", node.Link)
	}

	if got := readFile(t, filepath.Join(repo.ContentDir(), "guide", "Advanced", "tips.md")); got != "# tips\n" {
		t.Errorf("unexpected document body: %q", got)
	}
	if reloader.count() != 2 {
		t.Errorf("expected two reloads, got %d", reloader.count())
	}

	raw := readFile(t, filepath.Join(repo.Root(), SidebarFile))
	if !strings.Contains(raw, `"collapsed": false`) {
		t.Error("unknown sidebar field was dropped")
	}
}

func TestAddNode_Failures(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	if err := repo.AddNode("x", []string{"missing"}); !errors.Is(err, domain.ErrParentNotFound) {
		t.Errorf("expected ErrParentNotFound, got %v", err)
	}
	if err := repo.AddNode("setup", []string{"guide"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
	if _, err := repo.AddDocument("intro", []string{"guide"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAddCategoryThenDelete(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	if err := repo.AddCategory("api"); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}

	nav, _ := repo.Nav()
	if len(nav.Entries) != 3 || nav.Entries[1].Link != "/docs/api/" || nav.Entries[2].Text != "About" {
		t.Errorf("unexpected nav after add: %+v", nav.Entries)
	}
	sidebar, _ := repo.Sidebar()
	section := sidebar.Section("/docs/api/")
	if section == nil {
		t.Fatal("expected sidebar section /docs/api/")
	}
	if len(section.Nodes) != 1 || section.Nodes[0].Link != "/docs/api/index" {
		t.Errorf("unexpected section nodes: %+v", section.Nodes)
	}
	if got := readFile(t, filepath.Join(repo.ContentDir(), "api", "index.md")); got != "# api\n" {
		t.Errorf("unexpected index body: %q", got)
	}

	if err := repo.AddCategory("api"); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists on duplicate, got %v", err)
	}

	if err := repo.DeleteNode([]string{"api"}); err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}

	nav, _ = repo.Nav()
	if nav.Contains("api", "/docs/api/") {
		t.Error("nav entry still present")
	}
	sidebar, _ = repo.Sidebar()
	if sidebar.Section("/docs/api/") != nil {
		t.Error("sidebar section still present")
	}
	if _, err := os.Stat(filepath.Join(repo.ContentDir(), "api")); !os.IsNotExist(err) {
		t.Error("category directory still present")
	}
}

func TestDeleteNode_ToleratesMissingDirectory(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	if err := repo.DeleteNode([]string{"guide", "intro"}); err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}

	sidebar, _ := repo.Sidebar()
	if _, err := sidebar.Find([]string{"guide", "intro"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected node to be gone, got %v", err)
	}
}

func TestDeleteNode_RemovesLinkedDocument(t *testing.T) {
	repo, reloader, _ := newTestRepo(t)

	if err := repo.DeleteNode([]string{"guide", "setup"}); err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(repo.ContentDir(), "guide", "setup.md")); !os.IsNotExist(err) {
		t.Error("linked document still present")
	}
	if reloader.count() != 1 {
		t.Errorf("expected one reload, got %d", reloader.count())
	}

	if err := repo.DeleteNode([]string{"guide", "setup"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRecentlyModified_SkipsBackups(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	if _, err := repo.SaveDocument("/docs/guide/setup.md", "v2"); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	repo.Wait()

	old := time.Now().Add(-30 * time.Hour)
	if err := os.Chtimes(filepath.Join(repo.ContentDir(), "guide", "index.md"), old, old); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	repo.now = time.Now
	files, err := repo.RecentlyModified()
	if err != nil {
		t.Fatalf("RecentlyModified failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 documents, got %d: %+v", len(files), files)
	}
	if files[0].Path != "/docs/guide/setup" || files[0].Label != "just now" {
		t.Errorf("unexpected newest entry: %+v", files[0])
	}
	if files[1].Label != "yesterday" {
		t.Errorf("unexpected label for older entry: %s", files[1].Label)
	}
	for _, f := range files {
		if strings.Contains(f.Path, domain.BackupDir) {
			t.Errorf("backup listed: %s", f.Path)
		}
	}
}

func TestRefreshLanding(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	repo.now = time.Now

	n, err := repo.RefreshLanding()
	if err != nil {
		t.Fatalf("RefreshLanding failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 features, got %d", n)
	}

	got := readFile(t, filepath.Join(repo.Root(), LandingFile))
	if !strings.HasPrefix(got, "---\nlayout: home\nhero:\n") {
		t.Errorf("front matter order changed:\n%s", got)
	}
	if !strings.Contains(got, "link: /docs/guide/setup") {
		t.Errorf("feature missing:\n%s", got)
	}
	if !strings.HasSuffix(got, "---\n# Home\n\nBody text.\n") {
		t.Errorf("body not preserved:\n%s", got)
	}
}

func TestUploadImage(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	url, err := repo.UploadImage("/docs/guide/setup.md", "shot.PNG", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}
	if !strings.HasPrefix(url, "./assets/") || !strings.HasSuffix(url, ".PNG") {
		t.Errorf("unexpected url: %s", url)
	}

	stored := filepath.Join(repo.ContentDir(), "guide", domain.AssetsDir, strings.TrimPrefix(url, "./assets/"))
	if got := readFile(t, stored); got != "img" {
		t.Errorf("unexpected image content: %q", got)
	}

	if _, err := repo.UploadImage("/docs/guide/setup.md", "evil.sh", strings.NewReader("x")); !errors.Is(err, domain.ErrUnsupportedImage) {
		t.Errorf("expected ErrUnsupportedImage, got %v", err)
	}
}

func TestReadDocument(t *testing.T) {
	repo, _, _ := newTestRepo(t)

	data, err := repo.ReadDocument("/docs/guide/setup.md")
	if err != nil || string(data) != "old setup\n" {
		t.Errorf("unexpected read: %q, %v", data, err)
	}
	if _, err := repo.ReadDocument("/docs/guide/none.md"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
