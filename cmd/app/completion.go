// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

**Bash**:

$ source <(sitecfg completion bash)

To load completions for each session, execute once:
- Linux:
  $ sitecfg completion bash > /etc/bash_completion.d/sitecfg
- MacOS:
  $ sitecfg completion bash > /usr/local/etc/bash_completion.d/sitecfg

**Zsh**:

$ sitecfg completion zsh > "${fpath[1]}/_sitecfg"

You will need to start a new shell for this setup to take effect.

**Fish**:

$ sitecfg completion fish > ~/.config/fish/completions/sitecfg.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletion(out)
			}
		},
	}
}
