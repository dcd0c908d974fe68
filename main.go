package main

import (
	"github.com/vivek888gaya/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
