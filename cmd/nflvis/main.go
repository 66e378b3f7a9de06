package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd, closeLog := newRootCommand()
	err := cmd.Execute()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintln(os.Stderr, "close log:", cerr)
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
