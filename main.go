package main

import "github.com/Bitlatte/brochure/cmd"

func main() {
	cmd.Execute()
}
