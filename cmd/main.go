package main

import (
	"github.com/hoodiv/bveval/pkg/cmd"
)

func main() {
	cmd.Execute()
}
