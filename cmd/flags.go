package cmd

import (
	"github.com/gnames/gnprofiles/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag turns a command line flag into a config option.
// It returns nil if the flag was not set.
type funcFlag func(cmd *cobra.Command) config.Option

// applyFlags updates the global config with options of set flags.
// Flags override config.yaml and environment variables.
func applyFlags(cmd *cobra.Command, flags ...funcFlag) {
	var res []config.Option
	for _, f := range flags {
		if opt := f(cmd); opt != nil {
			res = append(res, opt)
		}
	}
	cfg.Update(res)
}

func jobsFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("jobs") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("jobs")
	return config.OptJobsNumber(i)
}

func progressFlag(cmd *cobra.Command) config.Option {
	b, _ := cmd.Flags().GetBool("progress")
	return config.OptImportProgressBar(b)
}

func immediateContributorsFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("immediate-contributors") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("immediate-contributors")
	return config.OptImportImmediateContributors(b)
}

func verifierURLFlag(cmd *cobra.Command) config.Option {
	s, _ := cmd.Flags().GetString("verifier-url")
	if s == "" {
		return nil
	}
	return config.OptVerifierURL(s)
}
