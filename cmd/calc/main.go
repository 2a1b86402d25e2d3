package main

import (
	"os"

	"go-chi-calculator/cmd/calc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
