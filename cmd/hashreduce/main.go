package main

import (
	"fmt"
	"os"

	"github.com/goelbenj/hashreduce/internal/command"
)

func main() {
	app := command.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
