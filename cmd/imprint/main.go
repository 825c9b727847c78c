package main

import "github.com/forgekit/imprint/internal/cli"

func main() {
	cli.Execute()
}
