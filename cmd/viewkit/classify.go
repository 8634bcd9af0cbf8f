package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/viewkit/internal/viewport"
	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

type classifyOptions struct {
	columns bool
}

func newClassifyCmd(app *AppContext) *cobra.Command {
	opts := classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <width>...",
		Short: "Print the breakpoint for each viewport width",
		Long: `Classify resolves each width against the configured thresholds and prints
the breakpoint together with the media query it matched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.classify")

			widths := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(strings.TrimSpace(arg))
				if err != nil || n < 0 {
					return apperrors.NewValidationError("width", fmt.Sprintf("%q is not a non-negative integer", arg), err)
				}
				if opts.columns {
					n = viewport.ColumnsToWidth(n, app.Config.CellWidth)
				}
				widths = append(widths, n)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, w := range widths {
				bp := app.Config.Thresholds.Classify(w)
				app.Log.Dev("classified", w, bp.String())
				logger.Debug(ctx, "classified width", "width", w, "breakpoint", bp.String())
				fmt.Fprintf(tw, "%d\t%s\t%s\n", w, bp, app.Config.Thresholds.Range(bp).MediaQuery())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.columns, "columns", false, "Treat arguments as terminal columns and multiply by the cell width")

	return cmd
}
