package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/viewkit/internal/color"
	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

func newContrastCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <color>...",
		Short: "Print the RGB value and readable text color for hex colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.contrast")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, arg := range args {
				rgb, ok := color.HexToRGB(arg)
				if !ok {
					logger.Warn(ctx, "invalid color", "value", arg)
					return apperrors.NewValidationError("color", fmt.Sprintf("%q is not a 3 or 6 digit hex color", arg), nil)
				}
				fmt.Fprintf(tw, "%s\trgb(%d, %d, %d)\t%s\n", arg, rgb.R, rgb.G, rgb.B, color.ContrastColor(arg))
			}
			return tw.Flush()
		},
	}

	return cmd
}
