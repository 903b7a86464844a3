package main

import (
	"github.com/sudhansu1991/MIrA/cmd"
)

func main() {
	cmd.Execute()
}
