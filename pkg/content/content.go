// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/osuxrq/sitecfg/pkg/osfakes/osshim"
)

// ErrDocumentNotFound is returned when a site link does not resolve to a document
var ErrDocumentNotFound = errors.New("document not found")

var indexFiles = []string{"README.md", "index.md"}

// Root is a content tree on the file system
type Root struct {
	dir string
	os  osshim.Os
}

// NewRoot creates a Root for the content tree in dir
func NewRoot(dir string, os osshim.Os) *Root {
	return &Root{dir: dir, os: os}
}

// IsExternal returns true if link points outside of the site
func IsExternal(link string) bool {
	return strings.Contains(link, "://") || strings.HasPrefix(link, "//") || strings.HasPrefix(link, "mailto:")
}

// Document returns the file path of the Markdown source a site-relative link
// points to. A link ending with / points to the directory index file, a link
// without extension may name a document or a directory.
func (r *Root) Document(link string) (string, error) {
	if !strings.HasPrefix(link, "/") {
		return "", fmt.Errorf("link %s is not site-relative", link)
	}
	if i := strings.IndexAny(link, "#?"); i >= 0 {
		link = link[:i]
	}
	var candidates []string
	switch {
	case strings.HasSuffix(link, "/"):
		for _, index := range indexFiles {
			candidates = append(candidates, link+index)
		}
	case strings.HasSuffix(link, ".md"):
		candidates = []string{link}
	case strings.HasSuffix(link, ".html"):
		candidates = []string{strings.TrimSuffix(link, ".html") + ".md"}
	default:
		candidates = []string{link + ".md"}
		for _, index := range indexFiles {
			candidates = append(candidates, path.Join(link, index))
		}
	}
	for _, c := range candidates {
		fn := filepath.Join(r.dir, filepath.FromSlash(c))
		isDir, err := r.os.IsDir(fn)
		if err != nil {
			if r.os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("checking %s for link %s failed: %w", fn, link, err)
		}
		if !isDir {
			return fn, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, link)
}
