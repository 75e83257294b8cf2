package main

import "github.com/sprout-app/sprout/internal/cli"

func main() {
	cli.Execute()
}
