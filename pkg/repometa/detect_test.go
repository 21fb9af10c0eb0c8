// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repometa_test

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/osuxrq/sitecfg/pkg/repometa"
	"github.com/osuxrq/sitecfg/pkg/repometa/repometafakes"
	"github.com/osuxrq/sitecfg/pkg/site"
)

var _ = Describe("Detect", func() {
	var (
		fakeGit  *repometafakes.FakeGit
		fakeRepo *repometafakes.FakeRepository
	)

	BeforeEach(func() {
		fakeGit = &repometafakes.FakeGit{}
		fakeRepo = &repometafakes.FakeRepository{}
		fakeGit.PlainOpenReturns(fakeRepo, nil)
		fakeRepo.RemoteURLsReturns([]string{"git@github.com:osuxrq/osuxrq.com.git"}, nil)
		fakeRepo.HeadReturns(plumbing.NewHashReference(plumbing.NewBranchReferenceName("main"), plumbing.ZeroHash), nil)
	})

	It("derives slug and branch", func() {
		info, err := repometa.Detect(fakeGit, "/site")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Slug()).To(Equal("osuxrq/osuxrq.com"))
		Expect(info.Host).To(Equal("github.com"))
		Expect(info.Branch).To(Equal("main"))
		Expect(fakeGit.PlainOpenArgsForCall(0)).To(Equal("/site"))
		Expect(fakeRepo.RemoteURLsArgsForCall(0)).To(Equal("origin"))
	})

	It("leaves branch empty on detached HEAD", func() {
		fakeRepo.HeadReturns(plumbing.NewHashReference(plumbing.HEAD, plumbing.ZeroHash), nil)
		info, err := repometa.Detect(fakeGit, "/site")
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Branch).To(BeEmpty())
	})

	It("fails without remote URLs", func() {
		fakeRepo.RemoteURLsReturns(nil, nil)
		_, err := repometa.Detect(fakeGit, "/site")
		Expect(err).To(MatchError("remote origin has no URL"))
	})

	It("wraps open errors", func() {
		fakeGit.PlainOpenReturns(nil, gogit.ErrRepositoryNotExists)
		_, err := repometa.Detect(fakeGit, "/site")
		Expect(errors.Is(err, gogit.ErrRepositoryNotExists)).To(BeTrue())
	})

	Describe("Complete", func() {
		It("fills empty fields", func() {
			theme := &site.Theme{}
			Expect(repometa.Complete(theme, fakeGit, "/site")).To(Succeed())
			Expect(theme.Repo).To(Equal("osuxrq/osuxrq.com"))
			Expect(theme.DocsRepo).To(Equal("osuxrq/osuxrq.com"))
			Expect(theme.DocsBranch).To(Equal("main"))
		})

		It("keeps declared fields", func() {
			theme := &site.Theme{Repo: "a/b", DocsBranch: "dev"}
			Expect(repometa.Complete(theme, fakeGit, "/site")).To(Succeed())
			Expect(theme.Repo).To(Equal("a/b"))
			Expect(theme.DocsRepo).To(Equal("a/b"))
			Expect(theme.DocsBranch).To(Equal("dev"))
		})

		It("does not open git when everything is declared", func() {
			theme := &site.Theme{Repo: "a/b", DocsRepo: "a/c", DocsBranch: "dev"}
			Expect(repometa.Complete(theme, fakeGit, "/site")).To(Succeed())
			Expect(fakeGit.PlainOpenCallCount()).To(Equal(0))
		})

		It("tolerates a missing checkout", func() {
			fakeGit.PlainOpenReturns(nil, gogit.ErrRepositoryNotExists)
			theme := &site.Theme{}
			Expect(repometa.Complete(theme, fakeGit, "/site")).To(Succeed())
			Expect(theme.Repo).To(BeEmpty())
		})

		It("fails on other git errors", func() {
			fakeRepo.RemoteURLsReturns(nil, gogit.ErrRemoteNotFound)
			Expect(repometa.Complete(&site.Theme{}, fakeGit, "/site")).NotTo(Succeed())
		})
	})
})

var _ = Describe("ParseRemoteURL", func() {
	table.DescribeTable("supported forms",
		func(remote, host, owner, name string) {
			info, err := repometa.ParseRemoteURL(remote)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Host).To(Equal(host))
			Expect(info.Owner).To(Equal(owner))
			Expect(info.Name).To(Equal(name))
		},
		table.Entry("https", "https://github.com/osuxrq/osuxrq.com.git", "github.com", "osuxrq", "osuxrq.com"),
		table.Entry("https without suffix", "https://github.com/osuxrq/osuxrq.com", "github.com", "osuxrq", "osuxrq.com"),
		table.Entry("scp-like", "git@github.com:osuxrq/osuxrq.com.git", "github.com", "osuxrq", "osuxrq.com"),
		table.Entry("ssh", "ssh://git@github.com/osuxrq/site.git", "github.com", "osuxrq", "site"),
	)

	table.DescribeTable("rejected forms",
		func(remote string) {
			_, err := repometa.ParseRemoteURL(remote)
			Expect(err).To(HaveOccurred())
		},
		table.Entry("local path", "/srv/git/site.git"),
		table.Entry("no repository", "https://github.com/osuxrq"),
		table.Entry("too deep", "https://gitlab.com/group/sub/site.git"),
	)
})
