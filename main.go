package main

import "github.com/Tiliavir/hours/cmd"

func main() {
	cmd.Execute()
}
