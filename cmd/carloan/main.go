package main

import "github.com/rustyeddy/carloan/internal/cli"

func main() {
	cli.Execute()
}
