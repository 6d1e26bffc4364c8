package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avdva/unum"
)

// Value construction modes.
const (
	ModeAsIs    = "asis"
	ModeExact   = "exact"
	ModeInexact = "inexact"
)

// ValidModes defines the allowed --mode values.
var ValidModes = []string{ModeAsIs, ModeExact, ModeInexact}

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Mode string
	Bits bool
}

// Report describes a single value.
type Report struct {
	Value    string `json:"value"`
	Bits     string `json:"bits"`
	Exact    bool   `json:"exact"`
	Lower    string `json:"lower"`
	Upper    string `json:"upper"`
	Size     string `json:"size"`
	NextUp   string `json:"next_up"`
	NextDown string `json:"next_down"`
	Decimal  string `json:"decimal,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <value>",
		Short: "Show exactness, bounds, interval size and neighbours of a value",
		Long: `Show exactness, bounds, interval size and neighbours of a value.

The value is a number, an interval like (2.0,2.000000000000001), qNaN or sNaN.
Use -- before negative numbers.

Example:
  unum inspect 2
  unum inspect --mode inexact 2
  unum inspect --bits 0x4000000000000001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0], opts.Mode, opts.Bits)
			if err != nil {
				return err
			}
			opts.logger.Debug("parsed value", "arg", args[0], "mode", opts.Mode, "value", v.GoString())
			r := NewReport(v)
			return writeResult(cmd.OutOrStdout(), opts.Format, r, r.fields())
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", ModeAsIs, "how to build the value from a number (asis|exact|inexact)")
	cmd.Flags().BoolVar(&opts.Bits, "bits", false, "treat the argument as a raw bit pattern, like 0x4000000000000001")

	return cmd
}

// NewReport describes v.
func NewReport(v unum.Double) Report {
	r := Report{
		Value:    v.String(),
		Bits:     fmt.Sprintf("0x%016x", v.Bits()),
		Exact:    v.IsExact(),
		Lower:    v.LowerBound().String(),
		Upper:    v.UpperBound().String(),
		Size:     v.IntervalSize().String(),
		NextUp:   v.NextUp().String(),
		NextDown: v.NextDown().String(),
	}
	if d, ok := v.Decimal(); ok {
		r.Decimal = d.String()
	}
	return r
}

func (r Report) fields() []field {
	result := []field{
		{"value", r.Value},
		{"bits", r.Bits},
		{"exact", strconv.FormatBool(r.Exact)},
		{"lower", r.Lower},
		{"upper", r.Upper},
		{"size", r.Size},
		{"next up", r.NextUp},
		{"next down", r.NextDown},
	}
	if len(r.Decimal) > 0 {
		result = append(result, field{"decimal", r.Decimal})
	}
	return result
}

// parseValue builds a value from a command line argument.
func parseValue(arg, mode string, bits bool) (unum.Double, error) {
	var v unum.Double
	if bits {
		b, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return unum.Zero, WrapExitError(ExitCommandError, fmt.Sprintf("bad bit pattern %q", arg), err)
		}
		v = unum.FromBits(b)
	} else {
		parsed, err := unum.FromString(arg)
		if err != nil {
			return unum.Zero, WrapExitError(ExitCommandError, fmt.Sprintf("bad value %q", arg), err)
		}
		v = parsed
	}
	switch mode {
	case ModeAsIs:
		return v, nil
	case ModeExact:
		return unum.ExactValueOf(v.Float64()), nil
	case ModeInexact:
		return unum.InexactValueOf(v.Float64()), nil
	}
	return unum.Zero, NewExitError(ExitCommandError, fmt.Sprintf("invalid mode %q: must be one of %v", mode, ValidModes))
}
