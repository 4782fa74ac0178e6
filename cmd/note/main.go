package main

import "note/cmd/note/cmd"

func main() {
	cmd.Execute()
}
