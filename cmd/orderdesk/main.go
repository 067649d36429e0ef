package main

import (
	"os"

	"github.com/IIPisarenko/ITOG/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
