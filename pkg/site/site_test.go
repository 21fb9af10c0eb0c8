// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/osuxrq/sitecfg/pkg/site"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/pointer"
)

var _ = Describe("Site", func() {
	Describe("Item", func() {
		It("reads bare links and groups from YAML", func() {
			var items []*site.Item
			Expect(yaml.Unmarshal([]byte(`
- /introduction/how-to-join.md
- text: Events
  children:
  - /events/README.md
  - dir: events/matches
    exclude: ["draft-*"]
`), &items)).To(Succeed())
			Expect(items).To(HaveLen(2))
			Expect(items[0].IsBare()).To(BeTrue())
			Expect(items[0].Link).To(Equal("/introduction/how-to-join.md"))
			Expect(items[1].IsBare()).To(BeFalse())
			Expect(items[1].Children).To(HaveLen(2))
			Expect(items[1].Children[1].IsDynamic()).To(BeTrue())
			Expect(items[1].Children[1].Exclude).To(Equal([]string{"draft-*"}))
		})
		It("rejects sequences", func() {
			var items []*site.Item
			Expect(yaml.Unmarshal([]byte(`[[a, b]]`), &items)).To(MatchError(ContainSubstring("navigation item")))
		})
		It("writes bare links as JSON strings", func() {
			b, err := json.Marshal([]*site.Item{
				{Link: "/faq/"},
				{Text: "FAQ", Link: "/faq/", ActiveMatch: "^/faq/$"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal(`["/faq/",{"text":"FAQ","link":"/faq/","activeMatch":"^/faq/$"}]`))
		})
		It("round trips through JSON", func() {
			in := []*site.Item{{Link: "/a.md"}, {Text: "b", Children: []*site.Item{{Link: "/b/c.md"}}}}
			b, err := json.Marshal(in)
			Expect(err).NotTo(HaveOccurred())
			var out []*site.Item
			Expect(json.Unmarshal(b, &out)).To(Succeed())
			Expect(out).To(Equal(in))
		})
		It("writes bare links as YAML strings", func() {
			in := []*site.Item{{Link: "/faq/"}, {Text: "More", Children: []*site.Item{{Link: "/misc/bots/"}}}}
			b, err := yaml.Marshal(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(HavePrefix("- /faq/\n"))
			Expect(string(b)).NotTo(ContainSubstring("link:"))
			var out []*site.Item
			Expect(yaml.Unmarshal(b, &out)).To(Succeed())
			Expect(out).To(Equal(in))
		})
	})

	Describe("HeadTag", func() {
		It("is serialized as a tuple", func() {
			b, err := json.Marshal(&site.HeadTag{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/images/hero.png"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal(`["link",{"href":"/images/hero.png","rel":"icon"}]`))
		})
		It("reads a tuple from YAML", func() {
			var tags []*site.HeadTag
			Expect(yaml.Unmarshal([]byte(`[[link, {rel: stylesheet, href: /fonts/Torus-Bold.woff2}]]`), &tags)).To(Succeed())
			Expect(tags).To(Equal([]*site.HeadTag{{Tag: "link", Attrs: map[string]string{"rel": "stylesheet", "href": "/fonts/Torus-Bold.woff2"}}}))
		})
		It("rejects malformed tuples", func() {
			var tags []*site.HeadTag
			Expect(yaml.Unmarshal([]byte(`[[link]]`), &tags)).To(HaveOccurred())
			Expect(json.Unmarshal([]byte(`[["link"]]`), &tags)).To(HaveOccurred())
		})
	})

	Describe("Config", func() {
		It("serializes framework field names", func() {
			cfg := &site.Config{
				Port:    5173,
				Bundler: "vite",
				Theme: &site.Theme{
					Repo:        "osuxrq/osuxrq.com",
					LastUpdated: pointer.BoolPtr(true),
					Locales: map[string]*site.ThemeLocale{
						"/": {
							EditLink: pointer.BoolPtr(true),
							Sidebar:  site.Sidebar{"/meta/": {{Link: "/meta/events.md"}}},
						},
					},
				},
			}
			b, err := json.Marshal(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal(`{"port":5173,"theme":{"locales":{"/":{"sidebar":{"/meta/":["/meta/events.md"]},"editLink":true}},"repo":"osuxrq/osuxrq.com","lastUpdated":true},"bundler":"vite"}`))
		})
	})

	Describe("Walk", func() {
		var items []*site.Item
		BeforeEach(func() {
			items = []*site.Item{
				{Link: "/a.md"},
				{Text: "g", Children: []*site.Item{{Link: "/g/1.md"}, {Text: "h", Children: []*site.Item{{Link: "/g/h/2.md"}}}}},
				{Link: "/b.md"},
			}
		})
		It("visits items depth first", func() {
			var visited []string
			Expect(site.Walk(items, func(it *site.Item, parent *site.Item) error {
				visited = append(visited, it.Link+it.Text)
				return nil
			})).To(Succeed())
			Expect(visited).To(Equal([]string{"/a.md", "g", "/g/1.md", "h", "/g/h/2.md", "/b.md"}))
		})
		It("passes the parent", func() {
			parents := map[string]string{}
			Expect(site.Walk(items, func(it *site.Item, parent *site.Item) error {
				if parent != nil {
					parents[it.Link+it.Text] = parent.Text
				}
				return nil
			})).To(Succeed())
			Expect(parents).To(Equal(map[string]string{"/g/1.md": "g", "h": "g", "/g/h/2.md": "h"}))
		})
		It("stops on error", func() {
			stop := errors.New("stop")
			count := 0
			Expect(site.Walk(items, func(it *site.Item, _ *site.Item) error {
				count++
				if it.Text == "g" {
					return stop
				}
				return nil
			})).To(MatchError(stop))
			Expect(count).To(Equal(2))
		})
	})

	Describe("Sidebar", func() {
		It("returns sorted prefixes", func() {
			s := site.Sidebar{"/misc/": nil, "/events/": nil, "/introduction/": nil}
			Expect(s.Prefixes()).To(Equal([]string{"/events/", "/introduction/", "/misc/"}))
		})
	})
})

var _ = Describe("JSON marshalers", func() {
	It("keep ampersands in bare links", func() {
		b, err := (&site.Item{Link: "https://meme.osuxrq.com/?a=1&b=2"}).MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`"https://meme.osuxrq.com/?a=1&b=2"`))
	})
	It("keep ampersands in groups", func() {
		b, err := (&site.Item{Text: "Q&A", Link: "/faq/?a=1&b=2"}).MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`"text":"Q&A"`))
		Expect(string(b)).To(ContainSubstring(`"link":"/faq/?a=1&b=2"`))
		Expect(string(b)).NotTo(HaveSuffix("\n"))
	})
	It("keep angle brackets and ampersands in head tags", func() {
		b, err := (&site.HeadTag{Tag: "meta", Attrs: map[string]string{"content": "<osu!> & friends"}}).MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`["meta",{"content":"<osu!> & friends"}]`))
	})
})
