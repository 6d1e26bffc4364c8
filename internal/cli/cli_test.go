package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/unum"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "unum", cmd.Use)

	for _, name := range []string{"inspect", "compare"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "inspect", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestInspectJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "inspect", "--mode", "inexact", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"value": "(2.000000000000001, 2.000000000000001)",
		"bits": "0x4000000000000001",
		"exact": false,
		"lower": "2.0",
		"upper": "2.000000000000001",
		"size": "4.440892098500626E-16",
		"next_up": "2.000000000000001",
		"next_down": "2.0",
		"decimal": "2.000000000000000444089209850062616169452667236328125"
	}`, out)
}

func TestInspectVerbose(t *testing.T) {
	out, err := run(t, "-v", "inspect", "--bits", "0xfff8000000000000")
	require.NoError(t, err)
	assert.Contains(t, out, "parsed value")
	assert.Contains(t, out, "value:     sNaN")
	assert.Contains(t, out, "next up:   -Infinity")
	assert.NotContains(t, out, "decimal:")
}

func TestCompareJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "compare", "--mode", "exact", "1", "qNaN")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cmp": -1, "min": "1.0", "max": "Infinity"}`, out)
}

func TestParseValue(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		arg  string
		mode string
		bits bool
		v    unum.Double
		code int
	}{
		{"2", ModeAsIs, false, unum.Two, ExitSuccess},
		{"10", ModeExact, false, unum.Ten, ExitSuccess},
		{"sNaN", ModeAsIs, false, unum.SNaN, ExitSuccess},
		{"sNaN", ModeExact, false, unum.ValueOf(unum.Exact(float64(unum.SNaN))), ExitSuccess},
		{"0x3ff0000000000000", ModeAsIs, true, unum.One, ExitSuccess},
		{"1", ModeInexact, false, unum.InexactValueOf(1), ExitSuccess},
		{"0xzz", ModeAsIs, true, unum.Zero, ExitCommandError},
		{"(1.0", ModeAsIs, false, unum.Zero, ExitCommandError},
		{"1", "other", false, unum.Zero, ExitCommandError},
	}
	for _, test := range tests {
		t.Run(test.arg+"/"+test.mode, func(t *testing.T) {
			v, err := parseValue(test.arg, test.mode, test.bits)
			if test.code == ExitSuccess {
				if a.NoError(err) {
					a.Equal(test.v.Bits(), v.Bits())
				}
			} else {
				a.Equal(test.code, GetExitCode(err))
			}
		})
	}
}
