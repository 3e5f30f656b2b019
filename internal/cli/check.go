package cli

import (
	"errors"
	"regexp"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"breachlook/internal/util"
	"breachlook/pkg/hibp"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Check a single password against the breach corpus",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return checkCommand("")
			} else {
				return checkCommand(args[0])
			}
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode.")
	checkCmd.Flags().BoolVarP(&hashed, "hashed", "s", false, "If the supplied password will be a Hexadecimal SHA1 hash or a plain text string.")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(password string) (err error) {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	lookuper := hibp.NewLookuper(hibp.NewClient(baseURL))

	if interactive {
		var label string
		if hashed {
			label = "SHA1 Hex hash"
		} else {
			label = "Password"
		}

		prompt := promptui.Prompt{
			Label: label,
			Validate: func(input string) error {
				if len(input) == 0 {
					return errors.New("please enter a valid password")
				}

				if hashed {
					match, _ := regexp.MatchString("^[a-fA-F\\d]{40}$", input)
					if !match {
						return errors.New("input is not a valid SHA1 Hexadecimal hash")
					}
				}
				return nil
			},
		}

		if !hashed {
			prompt.Mask = '*'
		} else {
			log.Info().Msgf("Flag 'hashed' is set. Please use SHA1 Hashed passwords.")
		}

		log.Info().Msgf("Running interactive session. ^C to exit")
		if err = runInteractiveSession(prompt, lookuper); err != nil {
			if err.Error() == "^C" || err.Error() == "^D" {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}
	} else {
		return checkOne(password, lookuper)
	}

	return
}

func runInteractiveSession(prompt promptui.Prompt, lookuper *hibp.Lookuper) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = checkOne(result, lookuper); err != nil {
			log.Error().Err(err).Msg("Error during query")
		}
	}
}

func checkOne(password string, lookuper *hibp.Lookuper) error {
	digest, err := processPassword(password)
	if err != nil {
		return err
	}

	result, err := lookuper.LookupDigest(context.Background(), digest)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	if result.Pwned() {
		log.Warn().Msgf("Password found %s time(s) across %s breached site(s). You should not use it",
			p.Sprintf("%d", result.Occurrences), p.Sprintf("%d", result.Sites))
	} else {
		log.Info().Msgf("Password not found in any known breach. It seems safe to use")
	}

	if !hashed {
		entropy := zxcvbn.PasswordStrength(password, nil)
		log.Info().Msgf("Estimated crack time %s (score %d/4)", entropy.CrackTimeDisplay, entropy.Score)
	}

	return nil
}

func processPassword(password string) (string, error) {
	if hashed {
		if match, _ := regexp.MatchString("^[a-fA-F\\d]{40}$", password); !match {
			return "", errors.New("input is not a valid SHA1 Hexadecimal hash")
		}

		// The hash must be uppercase
		return strings.ToUpper(password), nil
	}

	return hibp.Digest(password), nil
}
