// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package lister

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim"
	"golang.org/x/text/language"
	"k8s.io/klog/v2"
)

const (
	documentExt = ".md"
	sectionFile = "readme.md"
)

// Logger receives the diagnostics emitted while scanning directories
//
//counterfeiter:generate . Logger
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// KlogLogger is the Logger writing through klog
type KlogLogger struct{}

// Infof see klog.Infof
func (KlogLogger) Infof(format string, args ...interface{}) {
	klog.Infof(format, args...)
}

// Warningf see klog.Warningf
func (KlogLogger) Warningf(format string, args ...interface{}) {
	klog.Warningf(format, args...)
}

// Lister lists the Markdown documents found directly under content directories
// of a project and returns them as site-relative paths in sidebar order.
type Lister struct {
	root  string
	os    osshim.Os
	log   Logger
	order *Order
}

// NewLister creates a Lister resolving directories against root. Alphabetic
// document names are collated using the rules of the given locale.
func NewLister(root string, os osshim.Os, log Logger, locale language.Tag) *Lister {
	if log == nil {
		log = KlogLogger{}
	}
	return &Lister{
		root:  root,
		os:    os,
		log:   log,
		order: NewOrder(locale),
	}
}

// Root returns the project root directories are resolved against
func (l *Lister) Root() string {
	return l.root
}

// List returns the site-relative paths of the Markdown documents in dir.
// A missing directory is reported as a warning and yields no documents,
// any other file system error is returned.
func (l *Lister) List(dir string) ([]string, error) {
	dirPath := filepath.Join(l.root, dir)
	l.log.Infof("scanning directory: %s", dirPath)
	if _, err := l.os.Stat(dirPath); err != nil {
		if l.os.IsNotExist(err) {
			l.log.Warningf("directory does not exist: %s", dirPath)
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to stat directory %s: %w", dirPath, err)
	}
	entries, err := l.os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if IsDocument(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	l.order.Sort(names)
	docs := make([]string, 0, len(names))
	for _, name := range names {
		docs = append(docs, SitePath(dir, name))
	}
	return docs, nil
}

// IsDocument reports whether a directory entry name is a listed document:
// it ends with .md and is not a readme in any letter case.
func IsDocument(name string) bool {
	return strings.HasSuffix(name, documentExt) && strings.ToLower(name) != sectionFile
}

// SitePath builds the site-relative path of a document file in dir
func SitePath(dir, name string) string {
	return "/" + dir + "/" + name
}
