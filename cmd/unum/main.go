// Command unum inspects float64 values as unums.
package main

import (
	"os"

	"github.com/avdva/unum/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
