package main

import (
	"errors"
	"fmt"
	"os"

	"nsboot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				_, _ = fmt.Fprintln(os.Stderr, "nsboot:", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		_, _ = fmt.Fprintln(os.Stderr, "nsboot:", err)
		os.Exit(1)
	}
}
