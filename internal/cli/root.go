package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wcagcontrast/internal/infra/logger"
	"github.com/aalvaropc/wcagcontrast/internal/usecase"
)

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit status.
// Errors are reported on stderr followed by the usage of the failing command.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	c, err := cmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, c.UsageString())
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var debug bool
	var verbose bool
	var noColor bool
	var format string

	cmd := &cobra.Command{
		Use:   "contrast COLOR1 COLOR2",
		Short: "Calculate the contrast ratio between two colors according to WCAG guidelines",
		Long: `Calculate the contrast ratio between two colors according to WCAG guidelines.

Colors may be given as hex (#RRGGBB, RRGGBB, #RGB, RGB) or as comma-separated
decimal RGB values (r,g,b) with each component between 0 and 255.`,
		Example: `  contrast "#FFFFFF" "#000000"
  contrast FFFFFF 000000
  contrast 255,255,255 0,0,0
  contrast --verbose "#FFFFFF" "#000000"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup := setupLogging(cmd, debug)
			defer cleanup()

			renderer, err := rendererFor(format, verbose, noColor)
			if err != nil {
				return err
			}

			uc := usecase.NewCheckContrast(usecase.WithLogger(logger.L()))
			rep, err := uc.Execute(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderer.Render(cmd.OutOrStdout(), rep)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs (JSON) to stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed compliance information")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json|yaml")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(tuiCmd(&debug))
	return cmd
}

func setupLogging(cmd *cobra.Command, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Output: cmd.ErrOrStderr(),
		Debug:  debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
