package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/paso-board/cmd"
	"github.com/thenoetrevino/paso-board/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands report their own coded errors
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cmd.ExitCode(err))
}
