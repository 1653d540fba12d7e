package main

import "leakgate/cmd"

func main() {
	cmd.Execute()
}
