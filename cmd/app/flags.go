// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"

	"github.com/osuxrq/sitecfg/cmd/configuration"
	"github.com/osuxrq/sitecfg/pkg/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("manifest", "f", "",
		"Site manifest path.")
	_ = vip.BindPFlag("manifest", command.Flags().Lookup("manifest"))

	command.Flags().StringP("destination", "d", "docs/.vuepress/config.json",
		"Destination file of the assembled site configuration.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("root", ".",
		"Project root. Sidebar directories and links are resolved against it.")
	_ = vip.BindPFlag("root", command.Flags().Lookup("root"))

	command.Flags().String("format", site.FormatJSON,
		"Output format. Must be one of `json` or `yaml`.")
	_ = vip.BindPFlag("format", command.Flags().Lookup("format"))

	command.Flags().String("collation-locale", "",
		"BCP 47 locale used to order non-numeric document names. Empty means the root collation.")
	_ = vip.BindPFlag("collation-locale", command.Flags().Lookup("collation-locale"))

	command.Flags().StringToString("variables", map[string]string{},
		"Variables applied to parameterized (using Go template) manifest.")
	_ = vip.BindPFlag("variables", command.Flags().Lookup("variables"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing the configuration, it will output the projected file to the standard output and statistics for each sidebar.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().Bool("resolve", false,
		"Resolves the navbar and sidebars and prints them to the standard output. The resolution expands directory items into documents.")
	_ = vip.BindPFlag("resolve", command.Flags().Lookup("resolve"))

	command.Flags().Bool("skip-link-validation", false,
		"Links validation will be skipped")
	_ = vip.BindPFlag("skip-link-validation", command.Flags().Lookup("skip-link-validation"))

	command.Flags().Bool("verify-repo", false,
		"Verifies on GitHub that docsRepo exists and docsBranch is one of its branches.")
	_ = vip.BindPFlag("verify-repo", command.Flags().Lookup("verify-repo"))

	command.Flags().String("github-oauth-token", "",
		"GitHub personal token authorizing read access to the site repository. Defaults to $GITHUB_TOKEN.")
	_ = vip.BindPFlag("github-oauth-token", command.Flags().Lookup("github-oauth-token"))

	cacheDir := ""
	userHomeDir, err := os.UserHomeDir()
	if err == nil {
		// default value $HOME/.sitecfg/cache
		cacheDir = filepath.Join(userHomeDir, configuration.SitecfgHomeDir, "cache")
	}
	command.Flags().String("cache-dir", cacheDir,
		"Cache directory, used for GitHub API responses.")
	_ = vip.BindPFlag("cache-dir", command.Flags().Lookup("cache-dir"))
}
