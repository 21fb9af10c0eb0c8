// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/osuxrq/sitecfg/pkg/content"
	"github.com/osuxrq/sitecfg/pkg/site"
	"k8s.io/klog/v2"
)

// Locator resolves site-relative links to document files
type Locator interface {
	Document(link string) (string, error)
}

// Validator checks that the navigation of a site configuration points to existing documents
type Validator struct {
	locator Locator
}

// New creates a Validator resolving links with locator
func New(locator Locator) *Validator {
	return &Validator{locator: locator}
}

// Validate checks every site-relative link of the navbar and sidebar of all
// theme locales. External links are skipped. All broken links are reported.
func (v *Validator) Validate(cfg *site.Config) error {
	var errs *multierror.Error
	if cfg == nil || cfg.Theme == nil {
		return nil
	}
	checked := 0
	for _, locale := range cfg.Theme.LocalePaths() {
		tl := cfg.Theme.Locales[locale]
		if tl == nil {
			continue
		}
		n, err := v.validateItems(fmt.Sprintf("locale %s navbar", locale), tl.Navbar)
		checked += n
		errs = multierror.Append(errs, err)
		for _, prefix := range tl.Sidebar.Prefixes() {
			n, err = v.validateItems(fmt.Sprintf("locale %s sidebar %s", locale, prefix), tl.Sidebar[prefix])
			checked += n
			errs = multierror.Append(errs, err)
		}
	}
	klog.V(4).Infof("%d navigation links validated", checked)
	return errs.ErrorOrNil()
}

func (v *Validator) validateItems(where string, items []*site.Item) (int, error) {
	var errs *multierror.Error
	checked := 0
	_ = site.Walk(items, func(it *site.Item, _ *site.Item) error {
		if it.Link == "" || content.IsExternal(it.Link) {
			return nil
		}
		checked++
		if _, err := v.locator.Document(it.Link); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", where, err))
		}
		return nil
	})
	return checked, errs.ErrorOrNil()
}
