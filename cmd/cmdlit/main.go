package main

import "github.com/cmdlit-engine/cmdlit/cmd"

func main() {
	cmd.Execute()
}
