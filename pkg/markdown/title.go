// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	// goldmark.Markdown parser with GFM extensions
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// Title returns the document title: the front matter `title` if present,
// otherwise the text of the first level 1 heading, otherwise "".
func Title(source []byte) string {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(reader, parser.WithContext(context))
	if fm := meta.Get(context); fm != nil {
		if title, ok := fm["title"]; ok && title != nil {
			if t := strings.TrimSpace(fmt.Sprint(title)); t != "" {
				return t
			}
		}
	}
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(string(h.Text(source)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
