package main

import "hampter-link/cmd"

func main() {
	cmd.Execute()
}
