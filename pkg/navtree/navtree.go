// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package navtree

import (
	"fmt"

	"github.com/disiqueira/gotree/v3"
	"github.com/osuxrq/sitecfg/pkg/content"
	"github.com/osuxrq/sitecfg/pkg/markdown"
	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim"
	"github.com/osuxrq/sitecfg/pkg/site"
)

// TitleFunc returns the title of the document a link points to, or "" if unknown
type TitleFunc func(link string) string

// DocumentTitles returns a TitleFunc reading document titles from the content tree
func DocumentTitles(root *content.Root, os osshim.Os) TitleFunc {
	return func(link string) string {
		if content.IsExternal(link) {
			return ""
		}
		fn, err := root.Document(link)
		if err != nil {
			return ""
		}
		cnt, err := os.ReadFile(fn)
		if err != nil {
			return ""
		}
		return markdown.Title(cnt)
	}
}

// Render draws the navbar and sidebars of every theme locale as a tree
func Render(cfg *site.Config, title TitleFunc) string {
	root := gotree.New("site")
	if cfg == nil || cfg.Theme == nil {
		return root.Print()
	}
	for _, locale := range cfg.Theme.LocalePaths() {
		tl := cfg.Theme.Locales[locale]
		if tl == nil {
			continue
		}
		lt := root.Add("locale " + locale)
		if len(tl.Navbar) > 0 {
			addItems(lt.Add("navbar"), tl.Navbar, title)
		}
		for _, prefix := range tl.Sidebar.Prefixes() {
			addItems(lt.Add("sidebar "+prefix), tl.Sidebar[prefix], title)
		}
	}
	return root.Print()
}

func addItems(t gotree.Tree, items []*site.Item, title TitleFunc) {
	for _, it := range items {
		addItems(t.Add(label(it, title)), it.Children, title)
	}
}

func label(it *site.Item, title TitleFunc) string {
	switch {
	case it.IsDynamic():
		return fmt.Sprintf("[%s]", it.Dir)
	case it.Text != "" && it.Link != "":
		return fmt.Sprintf("%s -> %s", it.Text, it.Link)
	case it.Text != "":
		return it.Text
	}
	if t := title(it.Link); t != "" {
		return fmt.Sprintf("%s (%s)", it.Link, t)
	}
	return it.Link
}
