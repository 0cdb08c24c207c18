package main

import "github.com/goatx/resultsgen/cmd"

func main() {
	cmd.Execute()
}
