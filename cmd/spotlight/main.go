// Command spotlight renders and previews the spotlight overlay.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/spotlight/cmd/spotlight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
