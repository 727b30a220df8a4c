package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/wcagcontrast/internal/infra/logger"
	"github.com/aalvaropc/wcagcontrast/internal/ui/tui"
)

func tuiCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [COLOR1 [COLOR2]]",
		Short: "Compare two colors interactively",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup := setupLogging(cmd, *debug)
			defer cleanup()

			var initial [2]string
			copy(initial[:], args)

			return tui.Run(tui.Deps{
				Initial: initial,
				Logger:  logger.L(),
				Debug:   *debug,
			})
		},
	}
}
