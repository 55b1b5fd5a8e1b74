package main

import "encscan/cmd"

func main() {
	cmd.Execute()
}
