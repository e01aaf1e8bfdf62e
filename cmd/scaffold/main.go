// Command scaffold creates view and API folders in a Vue project. It exits
// with status 1 when the session fails.
package main

import (
	"os"

	"github.com/modu-ai/scaffold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
