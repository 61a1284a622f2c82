// Package main is the chase command itself.
package main

import (
	"os"

	"github.com/armkin/armkin/cli"
	"github.com/armkin/armkin/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.NewLogger("chase").AsZap().Fatal(err)
	}
}
