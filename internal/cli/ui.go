package cli

import (
	"github.com/spf13/cobra"

	"breachlook/internal/ui"
	"breachlook/pkg/hibp"
)

var (
	uiCmd = &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive breach checker screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No ApplyCliSettings here, log output would tear the screen.
			return ui.Run(hibp.NewLookuper(hibp.NewClient(baseURL)))
		},
	}
)

func init() {
	rootCmd.AddCommand(uiCmd)
}
