// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

type options struct {
	ManifestPath       string            `mapstructure:"manifest"`
	DestinationPath    string            `mapstructure:"destination"`
	Root               string            `mapstructure:"root"`
	Format             string            `mapstructure:"format"`
	CollationLocale    string            `mapstructure:"collation-locale"`
	Variables          map[string]string `mapstructure:"variables"`
	DryRun             bool              `mapstructure:"dry-run"`
	Resolve            bool              `mapstructure:"resolve"`
	SkipLinkValidation bool              `mapstructure:"skip-link-validation"`
	VerifyRepo         bool              `mapstructure:"verify-repo"`
	GitHubOAuthToken   string            `mapstructure:"github-oauth-token"`
	CacheDir           string            `mapstructure:"cache-dir"`
}
