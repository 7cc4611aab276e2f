package main

import "levelcode/cmd"

func main() {
	cmd.Execute()
}
