package main

import (
	"os"

	"web_validator/presentation/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
