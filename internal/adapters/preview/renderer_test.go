package preview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    []string
		notWant []string
	}{
		{
			name:   "heading gets an id",
			source: "# Getting Started\n",
			want:   []string{`<h1 id="getting-started">Getting Started</h1>`},
		},
		{
			name:   "gfm table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |\n",
			want:   []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "task list",
			source: "- [x] done\n",
			want:   []string{`type="checkbox"`},
		},
		{
			name:    "front matter is not rendered",
			source:  "---\nlayout: home\n---\n\n# Home\n",
			want:    []string{`<h1 id="home">Home</h1>`},
			notWant: []string{"layout"},
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render([]byte(tt.source))
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			html := string(out)
			for _, w := range tt.want {
				if !strings.Contains(html, w) {
					t.Errorf("expected %q in:\n%s", w, html)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(html, w) {
					t.Errorf("did not expect %q in:\n%s", w, html)
				}
			}
		})
	}
}
