package main

import (
	"os"

	"github.com/blackflame7983/relpub/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
