package main

import "github.com/calebthorne/sociograph/cmd/sociograph/commands"

func main() {
	commands.Execute()
}
