// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/bspmatch/cmd/bspmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
