// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

// Reference describes the manifest format for the command help and the generated command reference
const Reference = `The site manifest is a YAML document rendered as a Go template first.
Template values come from --variables key=value pairs; referencing a
missing key is an error, use {{ index . "key" }} for optional values.

Top level keys mirror the site configuration: head, locales, port, alias,
bundler and theme. Navbar and sidebar entries are either a bare link

  - /introduction/how-to-join.md

or a group

  - text: Events
    link: /events/
    activeMatch: ^/events/
    children: [...]

A sidebar entry with dir is replaced by the Markdown documents of that
directory, relative to --root:

  - dir: events/matches
    exclude: ["draft-*"]

README.md (any case) is skipped. Names made of digits only come first,
highest number first, followed by the remaining names in ascending order
of the --collation-locale collation. exclude holds glob patterns matched
against file names. dir cannot be combined with text, link, activeMatch or
children, and a missing directory yields no documents.

theme.repo, theme.docsRepo and theme.docsBranch left empty are taken from
the origin remote and the checked out branch of the git repository
containing --root.
`
