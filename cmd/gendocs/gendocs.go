// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuxrq/sitecfg/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

const (
	genDocsMarkdown genDocsFormat = iota
	genDocsManPages
)

type genDocsCmdFlags struct {
	format      string
	destination string
}

type genDocsFormat int

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	switch formatString {
	case "md":
		return genDocsMarkdown, nil
	case "man":
		return genDocsManPages, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, []string{"md", "man"})
}

// frontMatter makes the generated pages titled site documents
func frontMatter(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("---\ntitle: %s\n---\n\n", strings.ReplaceAll(name, "_", " "))
}

func linkHandler(name string) string {
	return name
}

// generate writes the reference of c, its subcommands and its help topics to destination
func generate(c *cobra.Command, format genDocsFormat, destination string) error {
	header := &doc.GenManHeader{
		Title:   "SITECFG",
		Manual:  "Sitecfg Command Reference",
		Section: "1",
		Source:  "sitecfg " + version.Version,
	}
	if format == genDocsManPages {
		if err := doc.GenManTree(c, header, destination); err != nil {
			return err
		}
	} else if err := doc.GenMarkdownTreeCustom(c, destination, frontMatter, linkHandler); err != nil {
		return err
	}
	// the tree generators skip help topics
	for _, topic := range c.Commands() {
		if !topic.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := generateTopic(topic, format, header, destination); err != nil {
			return err
		}
	}
	return nil
}

func generateTopic(topic *cobra.Command, format genDocsFormat, header *doc.GenManHeader, destination string) error {
	basename := strings.ReplaceAll(topic.CommandPath(), " ", "_")
	if format == genDocsManPages {
		basename = strings.ReplaceAll(topic.CommandPath(), " ", "-") + "." + header.Section
	} else {
		basename += ".md"
	}
	filename := filepath.Join(destination, basename)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if format == genDocsManPages {
		return doc.GenMan(topic, header, f)
	}
	if _, err = f.WriteString(frontMatter(filename)); err != nil {
		return err
	}
	return doc.GenMarkdownCustom(topic, f, linkHandler)
}

// NewGenCmdDocs generates commands reference documentation
// in Markdown (with site front matter) or man format
func NewGenCmdDocs() *cobra.Command {
	flags := &genDocsCmdFlags{}
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Root()
			c.DisableAutoGenTag = true
			destination := filepath.Clean(flags.destination)
			if _, err := os.Stat(destination); err != nil {
				if os.IsNotExist(err) {
					if err := os.MkdirAll(destination, os.ModePerm); err != nil {
						klog.Error(err)
						return err
					}
				} else {
					klog.Error(err)
					return err
				}
			}
			format, err := newGenDocsFormat(flags.format)
			if err != nil {
				klog.Error(err)
				return err
			}
			if err := generate(c, format, destination); err != nil {
				klog.Error(err)
				return err
			}
			return nil
		},
	}
	command.Flags().StringVarP(&flags.format, "format", "f", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&flags.destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	command.MarkFlagRequired("destination")
	return command
}
