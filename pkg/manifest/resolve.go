// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"path"

	"github.com/gobwas/glob"
	"github.com/osuxrq/sitecfg/pkg/site"
)

// Lister lists the site-relative document paths of a content directory
//
//counterfeiter:generate . Lister
type Lister interface {
	List(dir string) ([]string, error)
}

type resolver struct {
	lister Lister
	listed map[string][]string
}

// Resolve returns a copy of cfg in which every dynamic navigation item is
// replaced in place by links to the documents listed from its directory.
// cfg itself is not modified.
func Resolve(cfg *site.Config, l Lister) (*site.Config, error) {
	r := &resolver{
		lister: l,
		listed: map[string][]string{},
	}
	out := *cfg
	if cfg.Theme == nil {
		return &out, nil
	}
	theme := *cfg.Theme
	theme.Locales = make(map[string]*site.ThemeLocale, len(cfg.Theme.Locales))
	for _, locale := range cfg.Theme.LocalePaths() {
		tl := cfg.Theme.Locales[locale]
		if tl == nil {
			theme.Locales[locale] = nil
			continue
		}
		resolved := *tl
		var err error
		if resolved.Navbar, err = r.expand(tl.Navbar); err != nil {
			return nil, fmt.Errorf("locale %s navbar: %w", locale, err)
		}
		if tl.Sidebar != nil {
			resolved.Sidebar = make(site.Sidebar, len(tl.Sidebar))
			for _, prefix := range tl.Sidebar.Prefixes() {
				if resolved.Sidebar[prefix], err = r.expand(tl.Sidebar[prefix]); err != nil {
					return nil, fmt.Errorf("locale %s sidebar %s: %w", locale, prefix, err)
				}
			}
		}
		theme.Locales[locale] = &resolved
	}
	out.Theme = &theme
	return &out, nil
}

func (r *resolver) expand(items []*site.Item) ([]*site.Item, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]*site.Item, 0, len(items))
	for _, it := range items {
		if it.IsDynamic() {
			docs, err := r.documents(it)
			if err != nil {
				return nil, err
			}
			for _, doc := range docs {
				out = append(out, &site.Item{Link: doc})
			}
			continue
		}
		cp := *it
		children, err := r.expand(it.Children)
		if err != nil {
			return nil, err
		}
		cp.Children = children
		out = append(out, &cp)
	}
	return out, nil
}

func (r *resolver) documents(it *site.Item) ([]string, error) {
	docs, ok := r.listed[it.Dir]
	if !ok {
		var err error
		if docs, err = r.lister.List(it.Dir); err != nil {
			return nil, fmt.Errorf("listing documents in %s failed: %w", it.Dir, err)
		}
		r.listed[it.Dir] = docs
	}
	if len(it.Exclude) == 0 {
		return docs, nil
	}
	globs := make([]glob.Glob, 0, len(it.Exclude))
	for _, pattern := range it.Exclude {
		g, err := compileGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q for %s: %w", pattern, it.Dir, err)
		}
		globs = append(globs, g)
	}
	kept := make([]string, 0, len(docs))
	for _, doc := range docs {
		if !matchAny(globs, path.Base(doc)) {
			kept = append(kept, doc)
		}
	}
	return kept, nil
}

func compileGlob(pattern string) (glob.Glob, error) {
	return glob.Compile(pattern)
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
