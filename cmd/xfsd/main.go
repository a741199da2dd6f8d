// Command xfsd demonstrates activation, routing, and both reference
// backends (memfs, chrootfs) end-to-end from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
