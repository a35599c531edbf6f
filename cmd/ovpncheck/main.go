package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/groland11/openvpn-check-config/cmd/ovpncheck/app"
	"github.com/groland11/openvpn-check-config/cmd/ovpncheck/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		// Syntax errors have already been reported with line numbers.
		if errors.Is(err, app.ErrChecksFailed) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
