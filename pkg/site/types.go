// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

// Config is the configuration object handed over to the site framework
type Config struct {
	// Head lists the tags injected into the page head
	Head []*HeadTag `json:"head,omitempty" yaml:"head,omitempty"`
	// Locales maps a route prefix to the site metadata for that locale
	Locales map[string]*Locale `json:"locales,omitempty" yaml:"locales,omitempty"`
	// Port of the development server
	Port int `json:"port,omitempty" yaml:"port,omitempty"`
	// Alias maps import aliases to paths
	Alias map[string]string `json:"alias,omitempty" yaml:"alias,omitempty"`
	// Theme holds the default theme options
	Theme *Theme `json:"theme,omitempty" yaml:"theme,omitempty"`
	// Bundler names the bundler the framework builds with
	Bundler string `json:"bundler,omitempty" yaml:"bundler,omitempty"`
}

// HeadTag is a single head element. It is serialized as a [tag, attributes] tuple.
type HeadTag struct {
	Tag   string
	Attrs map[string]string
}

// Locale is the site metadata of one locale
type Locale struct {
	Lang        string `json:"lang,omitempty" yaml:"lang,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Theme holds the options of the default theme
type Theme struct {
	Locales      map[string]*ThemeLocale `json:"locales,omitempty" yaml:"locales,omitempty"`
	Repo         string                  `json:"repo,omitempty" yaml:"repo,omitempty"`
	LastUpdated  *bool                   `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Contributors *bool                   `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	DocsRepo     string                  `json:"docsRepo,omitempty" yaml:"docsRepo,omitempty"`
	DocsBranch   string                  `json:"docsBranch,omitempty" yaml:"docsBranch,omitempty"`
	DocsDir      string                  `json:"docsDir,omitempty" yaml:"docsDir,omitempty"`
}

// ThemeLocale holds the theme options of one locale
type ThemeLocale struct {
	Navbar           []*Item  `json:"navbar,omitempty" yaml:"navbar,omitempty"`
	Sidebar          Sidebar  `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	Logo             string   `json:"logo,omitempty" yaml:"logo,omitempty"`
	EditLink         *bool    `json:"editLink,omitempty" yaml:"editLink,omitempty"`
	EditLinkText     string   `json:"editLinkText,omitempty" yaml:"editLinkText,omitempty"`
	LastUpdatedText  string   `json:"lastUpdatedText,omitempty" yaml:"lastUpdatedText,omitempty"`
	ContributorsText string   `json:"contributorsText,omitempty" yaml:"contributorsText,omitempty"`
	Tip              string   `json:"tip,omitempty" yaml:"tip,omitempty"`
	Warning          string   `json:"warning,omitempty" yaml:"warning,omitempty"`
	Danger           string   `json:"danger,omitempty" yaml:"danger,omitempty"`
	NotFound         []string `json:"notFound,omitempty" yaml:"notFound,omitempty"`
	BackToHome       string   `json:"backToHome,omitempty" yaml:"backToHome,omitempty"`
	OpenInNewWindow  string   `json:"openInNewWindow,omitempty" yaml:"openInNewWindow,omitempty"`
}

// Sidebar maps a route prefix to the sidebar shown under it
type Sidebar map[string][]*Item

// Item is a navbar or sidebar entry. An item carrying only a link is a
// bare link and is serialized as a plain string.
type Item struct {
	Text        string  `json:"text,omitempty" yaml:"text,omitempty"`
	Link        string  `json:"link,omitempty" yaml:"link,omitempty"`
	ActiveMatch string  `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`
	Children    []*Item `json:"children,omitempty" yaml:"children,omitempty"`
	// Dir is a content directory whose documents replace this item
	Dir string `json:"-" yaml:"dir,omitempty"`
	// Exclude lists file name globs left out when expanding Dir
	Exclude []string `json:"-" yaml:"exclude,omitempty"`
}

// IsBare returns true if the item is a plain link
func (i *Item) IsBare() bool {
	return i.Link != "" && i.Text == "" && i.ActiveMatch == "" && len(i.Children) == 0 && i.Dir == ""
}

// IsDynamic returns true if the item is expanded from a content directory
func (i *Item) IsDynamic() bool {
	return i.Dir != ""
}
