// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/hashicorp/go-multierror"
	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim"
	"github.com/osuxrq/sitecfg/pkg/site"
	"gopkg.in/yaml.v3"
)

// Load reads the site manifest at path. The manifest is a Go template
// executed with vars before it is parsed.
func Load(os osshim.Os, path string, vars map[string]string) (*site.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read manifest %s: %w", path, err)
	}
	cfg, err := Parse(content, vars)
	if err != nil {
		return nil, fmt.Errorf("can't parse manifest %s: %w", path, err)
	}
	return cfg, nil
}

// Parse executes the manifest template with vars and decodes the result
func Parse(content []byte, vars map[string]string) (*site.Config, error) {
	t, err := template.New("manifest").Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, err
	}
	if vars == nil {
		vars = map[string]string{}
	}
	var b bytes.Buffer
	if err = t.Execute(&b, vars); err != nil {
		return nil, err
	}
	cfg := &site.Config{}
	dec := yaml.NewDecoder(&b)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err = Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the navigation items of every theme locale
func Validate(cfg *site.Config) error {
	var errs *multierror.Error
	if cfg.Theme == nil {
		return nil
	}
	for _, locale := range cfg.Theme.LocalePaths() {
		tl := cfg.Theme.Locales[locale]
		if tl == nil {
			continue
		}
		errs = multierror.Append(errs, validateItems(fmt.Sprintf("locale %s navbar", locale), tl.Navbar))
		for _, prefix := range tl.Sidebar.Prefixes() {
			errs = multierror.Append(errs, validateItems(fmt.Sprintf("locale %s sidebar %s", locale, prefix), tl.Sidebar[prefix]))
		}
	}
	return errs.ErrorOrNil()
}

func validateItems(where string, items []*site.Item) error {
	var errs *multierror.Error
	_ = site.Walk(items, func(it *site.Item, _ *site.Item) error {
		if it == nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: empty navigation item", where))
			return nil
		}
		if !it.IsDynamic() {
			if len(it.Exclude) > 0 {
				errs = multierror.Append(errs, fmt.Errorf("%s: exclude is only allowed together with dir", where))
			}
			if it.Link == "" && it.Text == "" {
				errs = multierror.Append(errs, fmt.Errorf("%s: navigation item has neither link nor text", where))
			}
			return nil
		}
		if it.Link != "" || it.Text != "" || it.ActiveMatch != "" || len(it.Children) > 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s: dir %s can't be combined with text, link, activeMatch or children", where, it.Dir))
		}
		if strings.HasPrefix(it.Dir, "/") || strings.HasSuffix(it.Dir, "/") {
			errs = multierror.Append(errs, fmt.Errorf("%s: dir %s must be relative to the content root without leading or trailing slash", where, it.Dir))
		}
		for _, pattern := range it.Exclude {
			if _, err := compileGlob(pattern); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: dir %s: invalid exclude pattern %q: %w", where, it.Dir, pattern, err))
			}
		}
		return nil
	})
	return errs.ErrorOrNil()
}
