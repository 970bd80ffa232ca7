package main

import "github.com/formalab/dfasim/cmd"

func main() {
	cmd.Execute()
}
