package main

import "calnote/internal/cli"

func main() {
	cli.Execute()
}
