package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	command := newRootCommand(afero.NewOsFs())
	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
