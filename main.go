package main

import "github.com/jsphweid/chapette/cmd"

func main() {
	cmd.Execute()
}
