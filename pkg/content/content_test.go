// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/osuxrq/sitecfg/pkg/content"
	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim/osshimfakes"
)

var _ = Describe("Content", func() {
	var (
		fakeOs *osshimfakes.FakeOs
		root   *content.Root
		files  map[string]bool
	)
	BeforeEach(func() {
		// path -> isDir
		files = map[string]bool{
			"/site/faq":                        true,
			"/site/faq/README.md":              false,
			"/site/meta/contribution-guide.md": false,
			"/site/misc/bots":                  true,
			"/site/misc/bots/index.md":         false,
			"/site/people/owner.md":            false,
			"/site/events/matches.md":          true,
		}
		fakeOs = &osshimfakes.FakeOs{}
		fakeOs.IsNotExistCalls(os.IsNotExist)
		fakeOs.IsDirCalls(func(path string) (bool, error) {
			isDir, ok := files[filepath.ToSlash(path)]
			if !ok {
				return false, os.ErrNotExist
			}
			return isDir, nil
		})
		root = content.NewRoot("/site", fakeOs)
	})

	DescribeTable("locating documents",
		func(link string, want string) {
			got, err := root.Document(link)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.ToSlash(got)).To(Equal(want))
		},
		Entry("markdown file", "/people/owner.md", "/site/people/owner.md"),
		Entry("directory with readme", "/faq/", "/site/faq/README.md"),
		Entry("directory with index", "/misc/bots/", "/site/misc/bots/index.md"),
		Entry("extensionless document", "/meta/contribution-guide", "/site/meta/contribution-guide.md"),
		Entry("extensionless directory", "/faq", "/site/faq/README.md"),
		Entry("html link", "/people/owner.html", "/site/people/owner.md"),
		Entry("anchor", "/people/owner.md#history", "/site/people/owner.md"),
	)

	DescribeTable("unresolvable links",
		func(link string) {
			_, err := root.Document(link)
			Expect(errors.Is(err, content.ErrDocumentNotFound)).To(BeTrue())
		},
		Entry("missing file", "/people/alumni.md"),
		Entry("directory without index", "/events/"),
		Entry("directory named like a document", "/events/matches.md"),
	)

	It("rejects relative links", func() {
		_, err := root.Document("people/owner.md")
		Expect(err).To(MatchError(ContainSubstring("not site-relative")))
	})

	It("propagates file system errors", func() {
		fakeOs.IsDirReturns(false, os.ErrPermission)
		_, err := root.Document("/people/owner.md")
		Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
	})

	It("recognizes external links", func() {
		Expect(content.IsExternal("https://meme.osuxrq.com/")).To(BeTrue())
		Expect(content.IsExternal("//cdn.example.com/x.js")).To(BeTrue())
		Expect(content.IsExternal("mailto:admin@osuxrq.com")).To(BeTrue())
		Expect(content.IsExternal("/faq/")).To(BeFalse())
	})
})
