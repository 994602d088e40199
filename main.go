package main

import "github.com/mouse-blink/quire/cmd"

func main() {
	cmd.Execute()
}
