package main

import (
	"github.com/wangdi2014/regtools/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
