package main

import "github.com/hyperifyio/pageclone/internal/cli"

func main() {
	cli.Execute()
}
