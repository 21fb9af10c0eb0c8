// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest_test

import (
	"errors"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/osuxrq/sitecfg/pkg/manifest"
	"github.com/osuxrq/sitecfg/pkg/manifest/manifestfakes"
	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim"
	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim/osshimfakes"
	"github.com/osuxrq/sitecfg/pkg/site"
)

var _ = Describe("Manifest", func() {
	var vars = map[string]string{"repo": "osuxrq/osuxrq.com"}

	Describe("Load", func() {
		It("loads the site manifest", func() {
			cfg, err := manifest.Load(&osshim.OsShim{}, "testdata/site.yaml", vars)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal(5173))
			Expect(cfg.Bundler).To(Equal("vite"))
			Expect(cfg.Head).To(HaveLen(5))
			Expect(cfg.Head[0]).To(Equal(&site.HeadTag{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/images/hero.png"}}))
			Expect(cfg.Locales["/"].Lang).To(Equal("zh-CN"))
			Expect(cfg.Theme.Repo).To(Equal("osuxrq/osuxrq.com"))
			Expect(cfg.Theme.DocsRepo).To(Equal("osuxrq/osuxrq.com"))
			tl := cfg.Theme.Locales["/"]
			Expect(tl.NotFound).To(HaveLen(4))
			Expect(tl.Navbar).To(HaveLen(5))
			Expect(tl.Navbar[0].IsBare()).To(BeTrue())
			Expect(tl.Sidebar.Prefixes()).To(Equal([]string{"/events/", "/introduction/", "/misc/"}))
			Expect(tl.Sidebar["/events/"][1].Children[1].Dir).To(Equal("events/matches"))
		})
		It("leaves optional variables empty for git detection", func() {
			cfg, err := manifest.Load(&osshim.OsShim{}, "testdata/site.yaml", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Theme.Repo).To(BeEmpty())
			Expect(cfg.Theme.DocsRepo).To(BeEmpty())
			Expect(cfg.Theme.DocsBranch).To(Equal("main"))
		})
		It("fails when the manifest can't be read", func() {
			fakeOs := &osshimfakes.FakeOs{}
			fakeOs.ReadFileReturns(nil, os.ErrPermission)
			_, err := manifest.Load(fakeOs, "site.yaml", vars)
			Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
			Expect(fakeOs.ReadFileArgsForCall(0)).To(Equal("site.yaml"))
		})
	})

	Describe("Parse", func() {
		It("accepts an empty manifest", func() {
			cfg, err := manifest.Parse([]byte(""), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(&site.Config{}))
		})
		It("renders optional variables through index", func() {
			cfg, err := manifest.Parse([]byte("theme:\n  repo: {{ index . \"repo\" }}\n"), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Theme.Repo).To(BeEmpty())
			cfg, err = manifest.Parse([]byte("theme:\n  repo: {{ index . \"repo\" }}\n"), map[string]string{"repo": "a/b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Theme.Repo).To(Equal("a/b"))
		})
		It("fails on missing required variables", func() {
			_, err := manifest.Parse([]byte("theme:\n  repo: {{ .repo }}\n"), nil)
			Expect(err).To(MatchError(ContainSubstring("repo")))
		})
		It("reports broken templates", func() {
			_, err := manifest.Parse([]byte("port: {{ .port"), nil)
			Expect(err).To(MatchError(ContainSubstring("template")))
		})
		It("rejects unknown fields", func() {
			_, err := manifest.Parse([]byte("prot: 5173\n"), nil)
			Expect(err).To(MatchError(ContainSubstring("prot")))
		})
		DescribeTable("navigation validation",
			func(sidebar string, want string) {
				_, err := manifest.Parse([]byte("theme:\n  locales:\n    /:\n      sidebar:\n        /x/:\n"+sidebar), nil)
				Expect(err).To(MatchError(ContainSubstring(want)))
			},
			Entry("dir with text", "          - {dir: x, text: X}\n", "can't be combined"),
			Entry("dir with children", "          - {dir: x, children: [/a.md]}\n", "can't be combined"),
			Entry("absolute dir", "          - {dir: /x}\n", "must be relative"),
			Entry("trailing slash dir", "          - {dir: x/}\n", "must be relative"),
			Entry("exclude without dir", "          - {text: X, exclude: [a]}\n", "only allowed together with dir"),
			Entry("invalid glob", "          - {dir: x, exclude: [\"[a\"]}\n", "invalid exclude pattern"),
			Entry("empty group", "          - {activeMatch: x}\n", "neither link nor text"),
		)
		It("collects all validation errors", func() {
			_, err := manifest.Parse([]byte(`
theme:
  locales:
    /:
      navbar:
        - {dir: /a}
      sidebar:
        /x/:
          - {dir: x, text: X}
`), nil)
			Expect(err).To(MatchError(ContainSubstring("2 errors occurred")))
		})
	})

	Describe("Resolve", func() {
		var (
			cfg    *site.Config
			lister *manifestfakes.FakeLister
		)
		BeforeEach(func() {
			var err error
			cfg, err = manifest.Load(&osshim.OsShim{}, "testdata/site.yaml", vars)
			Expect(err).NotTo(HaveOccurred())
			lister = &manifestfakes.FakeLister{}
			lister.ListCalls(func(dir string) ([]string, error) {
				switch dir {
				case "events/matches":
					return []string{"/events/matches/33.md", "/events/matches/2.md", "/events/matches/finals.md"}, nil
				case "misc/lastwords/users":
					return []string{"/misc/lastwords/users/alice.md", "/misc/lastwords/users/draft-bob.md"}, nil
				}
				return []string{}, nil
			})
		})
		It("splices the listed documents in place", func() {
			resolved, err := manifest.Resolve(cfg, lister)
			Expect(err).NotTo(HaveOccurred())
			sidebar := resolved.Theme.Locales["/"].Sidebar
			Expect(sidebar["/events/"][1]).To(Equal(&site.Item{
				Text: "群赛",
				Children: []*site.Item{
					{Link: "/events/matches/README.md"},
					{Link: "/events/matches/33.md"},
					{Link: "/events/matches/2.md"},
					{Link: "/events/matches/finals.md"},
				},
			}))
			Expect(sidebar["/events/"][2].Children).To(Equal([]*site.Item{{Link: "/events/charts/README.md"}}))
		})
		It("applies exclude patterns to file names", func() {
			resolved, err := manifest.Resolve(cfg, lister)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.Theme.Locales["/"].Sidebar["/misc/"][0].Children).To(Equal([]*site.Item{
				{Link: "/misc/lastwords/README.md"},
				{Link: "/misc/lastwords/users/alice.md"},
			}))
		})
		It("lists every directory once", func() {
			_, err := manifest.Resolve(cfg, lister)
			Expect(err).NotTo(HaveOccurred())
			Expect(lister.ListCallCount()).To(Equal(3))
			var dirs []string
			for i := 0; i < lister.ListCallCount(); i++ {
				dirs = append(dirs, lister.ListArgsForCall(i))
			}
			Expect(dirs).To(ConsistOf("events/matches", "events/charts", "misc/lastwords/users"))
		})
		It("does not modify the manifest", func() {
			_, err := manifest.Resolve(cfg, lister)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Theme.Locales["/"].Sidebar["/events/"][1].Children[1].Dir).To(Equal("events/matches"))
			Expect(cfg.Theme.Locales["/"].Sidebar["/events/"][1].Children).To(HaveLen(2))
		})
		It("keeps static entries untouched", func() {
			resolved, err := manifest.Resolve(cfg, lister)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.Theme.Locales["/"].Navbar).To(Equal(cfg.Theme.Locales["/"].Navbar))
			Expect(resolved.Head).To(Equal(cfg.Head))
			Expect(resolved.Theme.Repo).To(Equal(cfg.Theme.Repo))
		})
		It("fails when listing fails", func() {
			lister.ListReturns(nil, os.ErrPermission)
			_, err := manifest.Resolve(cfg, lister)
			Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("events/"))
		})
		It("resolves configurations without theme", func() {
			resolved, err := manifest.Resolve(&site.Config{Port: 8080}, lister)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(Equal(&site.Config{Port: 8080}))
			Expect(lister.ListCallCount()).To(BeZero())
		})
	})
})
