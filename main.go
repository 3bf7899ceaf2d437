package main

import "github.com/jsphweid/barsim/cmd"

func main() {
	cmd.Execute()
}
