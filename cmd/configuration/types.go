// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds user defaults for the command flags. Unset fields are nil.
type Config struct {
	CacheHome          *string           `yaml:"cacheHome,omitempty"`
	Root               *string           `yaml:"root,omitempty"`
	Format             *string           `yaml:"format,omitempty"`
	CollationLocale    *string           `yaml:"collationLocale,omitempty"`
	Variables          map[string]string `yaml:"variables,omitempty"`
	SkipLinkValidation *bool             `yaml:"skipLinkValidation,omitempty"`
	VerifyRepo         *bool             `yaml:"verifyRepo,omitempty"`
	GitHub             *GitHub           `yaml:"github,omitempty"`
}

// GitHub holds credentials for the GitHub API
type GitHub struct {
	OAuthToken *string `yaml:"oauthToken,omitempty"`
}

// Defaults returns the set fields keyed by the command flag they default
func (c *Config) Defaults() map[string]interface{} {
	defaults := map[string]interface{}{}
	if c == nil {
		return defaults
	}
	if c.CacheHome != nil {
		defaults["cache-dir"] = *c.CacheHome
	}
	if c.Root != nil {
		defaults["root"] = *c.Root
	}
	if c.Format != nil {
		defaults["format"] = *c.Format
	}
	if c.CollationLocale != nil {
		defaults["collation-locale"] = *c.CollationLocale
	}
	if len(c.Variables) > 0 {
		defaults["variables"] = c.Variables
	}
	if c.SkipLinkValidation != nil {
		defaults["skip-link-validation"] = *c.SkipLinkValidation
	}
	if c.VerifyRepo != nil {
		defaults["verify-repo"] = *c.VerifyRepo
	}
	if c.GitHub != nil && c.GitHub.OAuthToken != nil {
		defaults["github-oauth-token"] = *c.GitHub.OAuthToken
	}
	return defaults
}
