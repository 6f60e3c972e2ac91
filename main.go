// SPDX-License-Identifier: MPL-2.0

package main

import cmd "anypy/cmd/anypy"

func main() {
	cmd.Execute()
}
