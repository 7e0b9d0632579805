package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// pageType codes whether the command is the root or a child
type pageType int

const (
	root pageType = iota
	child
)

// meta is for describing the position/info for a command doc page
type meta struct {
	pageType pageType
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its page meta
var metaMap = map[string]meta{
	"gcwin":         {root, "gcwin", 0, ""},
	"gcwin_analyze": {child, "analyze", 0, "gcwin"},
	"gcwin_extract": {child, "extract", 1, "gcwin"},
	"gcwin_gc":      {child, "gc", 2, "gcwin"},
	"gcwin_split":   {child, "split", 3, "gcwin"},
	"gcwin_docs":    {child, "docs", 4, "gcwin"},
}

// docsCmd is for writing the Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:   "docs [dir]",
	Short: "Write Markdown documentation for the commands",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}
		if err := makeDocs(dir); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	RootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	m, ok := metaMap[pageName(filename)]
	if !ok {
		return ""
	}

	switch m.pageType {
	case root:
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
	}
	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := pageName(filename)
	if base == "gcwin" {
		return "/"
	}
	return base
}

func pageName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
