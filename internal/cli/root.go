// Copyright (c) 2025. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"breachlook/pkg/hibp"
)

var (
	rootCmd = &cobra.Command{
		Use:   "breachlook [COMMAND] [OPTIONS]",
		Short: "Check whether a password appears in known data breaches",
		Long: "Check passwords against the Pwned Passwords (haveibeenpwned.com) breach corpus using " +
			"the k-anonymity range API. Only the first five characters of a password's SHA1 hash are " +
			"ever sent over the network; the exact match happens locally.",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", hibp.DefaultBaseURL, "Base URL of the Pwned Passwords compatible range API")
}

func Execute() error {
	return rootCmd.Execute()
}
