// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"strings"

	"github.com/osuxrq/sitecfg/cmd/configuration"
	"github.com/osuxrq/sitecfg/cmd/gendocs"
	"github.com/osuxrq/sitecfg/cmd/version"
	"github.com/osuxrq/sitecfg/pkg/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix is the prefix of environment variables overriding flags
const EnvPrefix = "SITECFG"

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := newViper()
	cmd := &cobra.Command{
		Use:   "sitecfg",
		Short: "Assemble a documentation site configuration",
		Long: `Assembles the configuration of a documentation site from a manifest.
Sidebar groups declared with a directory are filled with the Markdown
documents of that directory, numeric names first in descending order,
then the remaining names in ascending collation order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := applyDefaults(vip, loader); err != nil {
				return err
			}
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}

	configureFlags(cmd, vip)

	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())
	cmd.AddCommand(newManifestHelpTopic())

	AddFlags(cmd)

	return cmd
}

// newManifestHelpTopic documents the manifest format as `sitecfg help manifest`
func newManifestHelpTopic() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Site manifest format",
		Long:  manifest.Reference,
	}
}

func newViper() *viper.Viper {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	// GITHUB_TOKEN is honoured next to SITECFG_GITHUB_OAUTH_TOKEN
	_ = vip.BindEnv("github-oauth-token", EnvPrefix+"_GITHUB_OAUTH_TOKEN", "GITHUB_TOKEN")
	return vip
}

// applyDefaults makes the user configuration the fallback of unset flags
func applyDefaults(vip *viper.Viper, loader configuration.Loader) error {
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	for key, value := range cfg.Defaults() {
		vip.SetDefault(key, value)
	}
	return nil
}

// AddFlags adds klog go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
