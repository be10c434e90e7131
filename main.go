package main

import "github.com/papapumpkin/warren/cmd"

func main() {
	cmd.Execute()
}
