package main

import "github.com/parkscout/parkscout/internal/cli"

func main() {
	cli.Execute()
}
