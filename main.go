package main

import (
	"os"

	"github.com/GuillemALba/prettier/cli"
)

func main() {
	os.Exit(cli.Run())
}
