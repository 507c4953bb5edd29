package main

import "github.com/sjzsdu/entrytree/cmd"

func main() {
	cmd.Execute()
}
