package main

import "github.com/notargets/gobuildings/cmd"

func main() {
	cmd.Execute()
}
