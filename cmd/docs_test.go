package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_filePrepender(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			"root page",
			"docs/gcwin.md",
			"---\nlayout: default\ntitle: gcwin\nnav_order: 0\nhas_children: true\npermalink: /\n---\n",
		},
		{
			"child page",
			"docs/gcwin_split.md",
			"---\nlayout: default\ntitle: split\nparent: gcwin\nnav_order: 3\n---\n",
		},
		{
			"unknown page",
			"docs/gcwin_help.md",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filePrepender(tt.filename); got != tt.want {
				t.Errorf("filePrepender() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_linkHandler(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"gcwin.md", "/"},
		{"gcwin_analyze.md", "gcwin_analyze"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := linkHandler(tt.filename); got != tt.want {
				t.Errorf("linkHandler() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_makeDocs(t *testing.T) {
	dir := t.TempDir()
	if err := makeDocs(dir); err != nil {
		t.Fatal(err)
	}

	for base := range metaMap {
		contents, err := os.ReadFile(filepath.Join(dir, base+".md"))
		if err != nil {
			t.Errorf("missing page for %s: %v", base, err)
			continue
		}
		if !strings.HasPrefix(string(contents), "---\nlayout: default\n") {
			t.Errorf("page %s is missing its front matter", base)
		}
	}
}
