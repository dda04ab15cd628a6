package main

import "github.com/aweris/nrs/cmd/nrs/cmd"

func main() {
	cmd.Execute()
}
