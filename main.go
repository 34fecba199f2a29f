package main

import "github.com/philipparndt/goeuclid/cmd"

func main() {
	cmd.Execute()
}
