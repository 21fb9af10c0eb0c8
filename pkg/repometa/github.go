// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repometa

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/hashicorp/go-multierror"
	"github.com/osuxrq/sitecfg/pkg/site"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

//counterfeiter:generate . Repositories

// Repositories is the subset of the GitHub repositories API used for verification
type Repositories interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

//counterfeiter:generate . References

// References is the subset of the GitHub git data API used for verification
type References interface {
	GetRef(ctx context.Context, owner string, repo string, ref string) (*github.Reference, *github.Response, error)
}

// Verifier checks the repository metadata of a site against GitHub
type Verifier struct {
	repositories Repositories
	references   References
}

// NewVerifier creates a Verifier
func NewVerifier(repositories Repositories, references References) *Verifier {
	return &Verifier{repositories: repositories, references: references}
}

// NewGitHubClient creates a GitHub client with a transport level disk cache in cachePath.
// An empty accessToken results in unauthenticated access.
func NewGitHubClient(ctx context.Context, accessToken string, cachePath string) *github.Client {
	base := http.DefaultTransport
	if len(accessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 100 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}
	return github.NewClient(cacheTransport.Client())
}

// Verify checks that the repositories named by theme exist and that docsBranch is a branch of docsRepo
func (v *Verifier) Verify(ctx context.Context, theme *site.Theme) error {
	var errs *multierror.Error
	if theme == nil {
		return nil
	}
	checked := map[string]bool{}
	for _, slug := range []string{theme.Repo, theme.DocsRepo} {
		if slug == "" || checked[slug] {
			continue
		}
		checked[slug] = true
		if err := v.verifyRepository(ctx, slug); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if theme.DocsRepo != "" && theme.DocsBranch != "" {
		if err := v.verifyBranch(ctx, theme.DocsRepo, theme.DocsBranch); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (v *Verifier) verifyRepository(ctx context.Context, slug string) error {
	owner, name, err := splitSlug(slug)
	if err != nil {
		return err
	}
	repo, _, err := v.repositories.Get(ctx, owner, name)
	if err != nil {
		return fmt.Errorf("repository %s can't be verified: %w", slug, err)
	}
	klog.V(4).Infof("repository %s verified, default branch %s", slug, repo.GetDefaultBranch())
	return nil
}

func (v *Verifier) verifyBranch(ctx context.Context, slug string, branch string) error {
	owner, name, err := splitSlug(slug)
	if err != nil {
		return err
	}
	if _, _, err = v.references.GetRef(ctx, owner, name, "heads/"+branch); err != nil {
		return fmt.Errorf("branch %s of repository %s can't be verified: %w", branch, slug, err)
	}
	return nil
}

func splitSlug(slug string) (string, string, error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository %s is not in owner/name form", slug)
	}
	return parts[0], parts[1], nil
}
