// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/osuxrq/sitecfg/pkg/site"
	"gopkg.in/yaml.v3"
)

var _ = Describe("Encode", func() {
	var cfg *site.Config
	BeforeEach(func() {
		cfg = &site.Config{
			Head: []*site.HeadTag{{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/images/hero.png?v=1&s=2"}}},
			Port: 5173,
			Theme: &site.Theme{
				Locales: map[string]*site.ThemeLocale{
					"/": {Navbar: []*site.Item{{Link: "/faq/"}, {Text: "More", Children: []*site.Item{{Text: "Memories", Link: "https://meme.osuxrq.com/?a=1&b=2"}}}}},
				},
			},
		}
	})
	It("encodes indented JSON without HTML escaping", func() {
		b, err := site.Encode(cfg, site.FormatJSON)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(HavePrefix("{\n  \"head\": [\n    [\n      \"link\",\n"))
		Expect(string(b)).To(ContainSubstring(`"https://meme.osuxrq.com/?a=1&b=2"`))
		Expect(string(b)).To(ContainSubstring(`"href": "/images/hero.png?v=1&s=2"`))
		Expect(string(b)).NotTo(ContainSubstring(`\u0026`))
		Expect(string(b)).To(ContainSubstring(`"navbar": [
          "/faq/",`))
	})
	It("encodes YAML which decodes to the same configuration", func() {
		b, err := site.Encode(cfg, site.FormatYAML)
		Expect(err).NotTo(HaveOccurred())
		decoded := &site.Config{}
		Expect(yaml.Unmarshal(b, decoded)).To(Succeed())
		Expect(decoded).To(Equal(cfg))
	})
	It("rejects unknown formats", func() {
		_, err := site.Encode(cfg, "toml")
		Expect(err).To(MatchError(ContainSubstring("unknown format")))
	})
})
