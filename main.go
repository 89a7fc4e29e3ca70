package main

import "github.com/notargets/laxtube/cmd"

func main() {
	cmd.Execute()
}
