// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/osuxrq/sitecfg/pkg/content"
	"github.com/osuxrq/sitecfg/pkg/lister"
	"github.com/osuxrq/sitecfg/pkg/manifest"
	"github.com/osuxrq/sitecfg/pkg/navtree"
	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim"
	"github.com/osuxrq/sitecfg/pkg/repometa"
	"github.com/osuxrq/sitecfg/pkg/site"
	"github.com/osuxrq/sitecfg/pkg/validator"
	"github.com/osuxrq/sitecfg/pkg/writers"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	var options options
	if err := vip.Unmarshal(&options); err != nil {
		return err
	}
	if options.ManifestPath == "" {
		return errors.New(`required flag(s) "manifest" not set`)
	}
	root, err := filepath.Abs(options.Root)
	if err != nil {
		return err
	}
	locale, err := collationLocale(options.CollationLocale)
	if err != nil {
		return err
	}
	klog.Infof("Manifest: %s", options.ManifestPath)
	klog.Infof("Root: %s", root)

	fs := &osshim.OsShim{}
	cfg, err := manifest.Load(fs, options.ManifestPath, options.Variables)
	if err != nil {
		return err
	}
	resolved, err := manifest.Resolve(cfg, lister.NewLister(root, fs, lister.KlogLogger{}, locale))
	if err != nil {
		return fmt.Errorf("failed to resolve manifest %s: %w", options.ManifestPath, err)
	}
	if err = repometa.Complete(resolved.Theme, repometa.NewGit(), root); err != nil {
		return err
	}
	if options.VerifyRepo {
		client := repometa.NewGitHubClient(ctx, options.GitHubOAuthToken, filepath.Join(options.CacheDir, "github"))
		if err = repometa.NewVerifier(client.Repositories, client.Git).Verify(ctx, resolved.Theme); err != nil {
			return err
		}
	}

	contentRoot := content.NewRoot(root, fs)
	if !options.SkipLinkValidation {
		if err = validator.New(contentRoot).Validate(resolved); err != nil {
			return err
		}
	}
	if options.Resolve {
		tree := navtree.Render(resolved, navtree.DocumentTitles(contentRoot, fs))
		if isTerminal(out) {
			tree = highlight(tree)
		}
		_, err = fmt.Fprintln(out, tree)
		return err
	}

	blob, err := site.Encode(resolved, options.Format)
	if err != nil {
		return err
	}
	destination := options.DestinationPath
	if !filepath.IsAbs(destination) {
		destination = filepath.Join(root, destination)
	}
	if options.DryRun {
		projected := destination
		if rel, err := filepath.Rel(root, destination); err == nil {
			projected = filepath.ToSlash(rel)
		}
		dryRun := writers.NewDryRunWritersFactory(out)
		if err = dryRun.GetWriter(path.Dir(projected)).Write(path.Base(projected), "", blob); err != nil {
			return err
		}
		countSidebars(resolved, dryRun)
		return dryRun.Flush()
	}
	klog.Infof("Output: %s", destination)
	return (&writers.FSWriter{Root: filepath.Dir(destination)}).Write(filepath.Base(destination), "", blob)
}

func collationLocale(tag string) (language.Tag, error) {
	if tag == "" {
		return language.Und, nil
	}
	locale, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid collation locale %s: %w", tag, err)
	}
	return locale, nil
}

// countSidebars records the number of links of each sidebar
func countSidebars(cfg *site.Config, dryRun writers.DryRunWriter) {
	if cfg.Theme == nil {
		return
	}
	for _, locale := range cfg.Theme.LocalePaths() {
		tl := cfg.Theme.Locales[locale]
		if tl == nil {
			continue
		}
		for _, prefix := range tl.Sidebar.Prefixes() {
			links := 0
			_ = site.Walk(tl.Sidebar[prefix], func(item *site.Item, _ *site.Item) error {
				if item.Link != "" {
					links++
				}
				return nil
			})
			dryRun.Count(fmt.Sprintf("locale %s sidebar %s links", locale, prefix), links)
		}
	}
}
