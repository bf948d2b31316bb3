package main

import "herosheet/cmd/herosheet-cli/cmd"

func main() {
	cmd.Execute()
}
