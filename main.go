package main

import "carve/cli"

func main() {
	cli.Execute()
}
