package main

import "settergen/cmd"

func main() {
	cmd.Execute()
}
