// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots
	GetWriter(root string) Writer
	// Count records a named statistic printed after the file hierarchy
	Count(name string, n int)
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	Writer io.Writer
	files  []*file
	stats  []*stat
	t1     time.Time
}

type stat struct {
	name  string
	count int
}

type file struct {
	path string
	size int
}

type writer struct {
	root  string
	files *[]*file
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root:  root,
		files: &d.files,
	}
}

func (d *dryRunWriter) Count(name string, n int) {
	d.stats = append(d.stats, &stat{name: name, count: n})
}

func (w *writer) Write(name, path string, content []byte) error {
	p := strings.TrimPrefix(strings.Join([]string{w.root, path, name}, "/"), "/")
	p = strings.ReplaceAll(p, "//", "/")
	*w.files = append(*w.files, &file{
		path: p,
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	if len(d.stats) > 0 {
		b.WriteString("\n")
	}
	for _, s := range d.stats {
		b.WriteString(fmt.Sprintf("%s: %d\n", s.name, s.count))
	}
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.Writer.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	all := map[string]struct{}{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if _, ok := all[p]; ok {
				continue
			}
			all[p] = struct{}{}
			b.WriteString(strings.Repeat("  ", i))
			b.WriteString(s)
			if i == len(dd)-1 && f.size > 0 {
				b.WriteString(fmt.Sprintf(" (%d bytes)", f.size))
			}
			b.WriteString("\n")
		}
	}
}
