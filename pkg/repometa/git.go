// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repometa

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Git interface defines gogit git API
//
//counterfeiter:generate . Git
type Git interface {
	PlainOpen(path string) (Repository, error)
}

// Repository interface defines gogit repository API
//
//counterfeiter:generate . Repository
type Repository interface {
	RemoteURLs(name string) ([]string, error)
	Head() (*plumbing.Reference, error)
}

type git struct {
	repository *gogit.Repository
}

// NewGit creates new git struct
func NewGit() Git {
	return &git{}
}

// PlainOpen opens the repository containing path, looking for .git in the parent directories
func (g *git) PlainOpen(path string) (Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	return &git{repository: repo}, nil
}

// RemoteURLs returns the configured URLs of the named remote
func (g *git) RemoteURLs(name string) ([]string, error) {
	remote, err := g.repository.Remote(name)
	if err != nil {
		return nil, err
	}
	return remote.Config().URLs, nil
}

// Head returns the reference HEAD points to
func (g *git) Head() (*plumbing.Reference, error) {
	return g.repository.Head()
}
