package main

import (
	"github.com/gearhub/gearhub/internal/cli"
)

func main() {
	cli.Execute()
}
