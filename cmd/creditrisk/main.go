package main

import "github.com/bibbank/creditrisk/internal/presentation/cli"

func main() {
	cli.Execute()
}
