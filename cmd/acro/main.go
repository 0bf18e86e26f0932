// acro finds dictionary words that spell an acronym for a list of phrases.
package main

import (
	"fmt"
	"os"

	"github.com/corey/acro/cmd/acro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
