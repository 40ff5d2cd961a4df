package main

import "vidembed/cmd"

func main() {
	cmd.Execute()
}
