package main

import "github.com/runeforge/x86rt/cmd/x86rt/cmd"

func main() {
	cmd.Execute()
}
