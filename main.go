package main

import (
	"github.com/monitoxx/gcwin/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
