package main

import "github.com/poulpybifle/buslog/cmd"

func main() {
	cmd.Execute()
}
