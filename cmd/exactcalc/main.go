package main

import (
	"fmt"
	"os"

	"github.com/zephyrtronium/exactcalc/cmd/exactcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "exactcalc:", err)
		os.Exit(1)
	}
}
