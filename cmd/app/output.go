// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var treeHeadings = []string{"locale ", "navbar", "sidebar "}

// isTerminal reports whether out is an interactive terminal
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// highlight emphasises the locale and section lines of a rendered navigation tree
func highlight(tree string) string {
	heading := color.New(color.Bold, color.FgCyan)
	heading.EnableColor()
	lines := strings.Split(tree, "\n")
	for i, line := range lines {
		label := strings.TrimLeft(line, "│├└─  ")
		for _, h := range treeHeadings {
			if strings.HasPrefix(label, h) {
				lines[i] = line[:len(line)-len(label)] + heading.Sprint(label)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
