// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repometa

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/osuxrq/sitecfg/pkg/site"
	"k8s.io/klog/v2"
)

const defaultRemote = "origin"

// Info describes the repository hosting the site sources
type Info struct {
	Host   string
	Owner  string
	Name   string
	Branch string
}

// Slug returns owner/name
func (i *Info) Slug() string {
	return i.Owner + "/" + i.Name
}

// Detect reads the repository information of the git checkout containing root
func Detect(g Git, root string) (*Info, error) {
	repo, err := g.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s failed: %w", root, err)
	}
	urls, err := repo.RemoteURLs(defaultRemote)
	if err != nil {
		return nil, fmt.Errorf("reading remote %s failed: %w", defaultRemote, err)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("remote %s has no URL", defaultRemote)
	}
	info, err := ParseRemoteURL(urls[0])
	if err != nil {
		return nil, err
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD failed: %w", err)
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}

// ParseRemoteURL extracts host, owner and repository name from a remote URL
// in https, ssh or scp-like form.
func ParseRemoteURL(remote string) (*Info, error) {
	var host, p string
	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse remote url %s: %w", remote, err)
		}
		host, p = u.Hostname(), u.Path
	} else if at := strings.Index(remote, "@"); at >= 0 && strings.Contains(remote[at:], ":") {
		hostPath := remote[at+1:]
		colon := strings.Index(hostPath, ":")
		host, p = hostPath[:colon], hostPath[colon+1:]
	} else {
		return nil, fmt.Errorf("unsupported remote url %s", remote)
	}
	segments := strings.Split(strings.Trim(p, "/"), "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return nil, fmt.Errorf("remote url %s does not point to a repository", remote)
	}
	return &Info{
		Host:  host,
		Owner: segments[0],
		Name:  strings.TrimSuffix(segments[1], ".git"),
	}, nil
}

// Complete fills the repository fields of theme left empty in the manifest
// from the git checkout containing root. A missing checkout is not an error.
func Complete(theme *site.Theme, g Git, root string) error {
	if theme == nil || (theme.Repo != "" && theme.DocsRepo != "" && theme.DocsBranch != "") {
		return nil
	}
	info, err := Detect(g, root)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			klog.Warningf("%s is not in a git repository, repository metadata left as declared", root)
			return nil
		}
		return err
	}
	if theme.Repo == "" {
		theme.Repo = info.Slug()
		klog.Infof("repo detected from git remote: %s", theme.Repo)
	}
	if theme.DocsRepo == "" {
		theme.DocsRepo = theme.Repo
	}
	if theme.DocsBranch == "" && info.Branch != "" {
		theme.DocsBranch = info.Branch
		klog.Infof("docsBranch detected from git HEAD: %s", theme.DocsBranch)
	}
	return nil
}
