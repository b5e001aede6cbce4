// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/modoverlap/modoverlap/cmd/modoverlap"

func main() {
	cmd.Execute()
}
