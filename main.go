package main

import "github.com/Alijeyrad/cardioai/cmd"

func main() {
	cmd.Execute()
}
