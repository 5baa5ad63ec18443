package main

import "github.com/torneokills/torneo/internal/cli"

func main() {
	cli.Execute()
}
