package main

import (
	"stockcast/internal/cli"
)

func main() {
	cli.Run()
}
