// Package main provides the caskgen command-line application.
package main

import (
	"log"
	"os"

	"github.com/package-naming-project/caskgen/internal/cli"
)

func main() {
	app := cli.NewApp()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
