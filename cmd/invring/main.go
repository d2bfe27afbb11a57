// SPDX-License-Identifier: MIT

// Command invring computes generators of invariant rings from YAML problem files.
package main

import "github.com/katalvlaran/invring/internal/cli"

func main() {
	cli.Execute()
}
