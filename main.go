package main

import "github.com/bitexhq/bitemetrics/cmd"

func main() {
	cmd.Execute()
}
