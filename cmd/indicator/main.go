package main

import (
	"github.com/c9s/indicator/pkg/cmd"
)

func main() {
	cmd.Execute()
}
