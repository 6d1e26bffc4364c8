package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// CompareResult is the output of the compare command.
type CompareResult struct {
	Cmp int    `json:"cmp"`
	Min string `json:"min"`
	Max string `json:"max"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two values in the unum total order",
		Long: `Compare two values in the unum total order.

Prints -1, 0 or 1, and the smaller and the larger value.
sNaN is below every value with a non-negative bit pattern,
qNaN is above every value with a negative one.

Example:
  unum compare sNaN 1
  unum compare -- -0.0 0.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseValue(args[0], mode, false)
			if err != nil {
				return err
			}
			b, err := parseValue(args[1], mode, false)
			if err != nil {
				return err
			}
			rootOpts.logger.Debug("comparing", "a", a.GoString(), "b", b.GoString())
			res := CompareResult{
				Cmp: a.Cmp(b),
				Min: a.Min(b).String(),
				Max: a.Max(b).String(),
			}
			return writeResult(cmd.OutOrStdout(), rootOpts.Format, res, []field{
				{"cmp", strconv.Itoa(res.Cmp)},
				{"min", res.Min},
				{"max", res.Max},
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", ModeAsIs, "how to build the values from numbers (asis|exact|inexact)")

	return cmd
}
