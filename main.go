package main

import (
	"fairway/cmd"
)

func main() {
	cmd.Execute()
}
