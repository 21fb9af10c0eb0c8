// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import "sort"

// WalkFunc is called for every item visited by Walk. Returning an error stops the walk.
type WalkFunc func(item *Item, parent *Item) error

// Walk visits items depth-first in declaration order
func Walk(items []*Item, fn WalkFunc) error {
	return walk(items, nil, fn)
}

func walk(items []*Item, parent *Item, fn WalkFunc) error {
	for _, it := range items {
		if err := fn(it, parent); err != nil {
			return err
		}
		if err := walk(it.Children, it, fn); err != nil {
			return err
		}
	}
	return nil
}

// Prefixes returns the sidebar route prefixes in sorted order
func (s Sidebar) Prefixes() []string {
	prefixes := make([]string, 0, len(s))
	for prefix := range s {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// LocalePaths returns the locale route prefixes of the theme in sorted order
func (t *Theme) LocalePaths() []string {
	if t == nil {
		return nil
	}
	paths := make([]string, 0, len(t.Locales))
	for p := range t.Locales {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
