package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"breachlook/internal/audit"
	"breachlook/internal/util"
	"breachlook/pkg/hibp"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Audit a newline-delimited password list against the breach corpus",
		Long: "Check every entry of a password list against the range API and write the exposed " +
			"ones to a findings file as DIGEST:COUNT lines. Plaintext passwords never leave the " +
			"machine and are never written to the findings file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Password list input file, one entry per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().StringVarP(&outFile, "out-file", "o", "./breach-findings.txt", "Findings output file path. Can be absolute or relative.")
	auditCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the audit. If omitted or less than 1, defaults to the number of logical processors of the machine.")
	auditCmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "Maximum range requests per second. 0 disables the limit.")
	auditCmd.Flags().BoolVarP(&hashed, "hashed", "s", false, "If the list entries are Hexadecimal SHA1 hashes instead of plain text passwords.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	in, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(in *os.File) {
		if err = in.Close(); err != nil {
			log.Error().Err(err).Msg("error closing password list file")
		}
	}(in)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err := os.Stat(abs)
		if err == nil {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", abs)
		}
	}

	out, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(out *os.File) {
		if err = out.Close(); err != nil {
			log.Error().Err(err).Msg("error closing findings file")
		}
	}(out)

	lookuper := hibp.NewLookuper(hibp.NewClient(baseURL))
	a := audit.NewAuditor(lookuper, out, threads, rateLimit, hashed)
	return a.ProcessList(in)
}
