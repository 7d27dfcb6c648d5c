package main

import "github.com/jodagreyhame/ralph-wiggum-docker/cmd"

func main() {
	cmd.Execute()
}
