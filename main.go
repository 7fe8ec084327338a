package main

import "github.com/aleph-zero/linkedlist/cmd"

func main() {
	cmd.Execute()
}
