package main

import "github.com/givepool/givepool/cmd"

func main() {
	cmd.Execute()
}
