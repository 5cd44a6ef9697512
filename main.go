package main

import "vikarfaktura/cmd"

func main() {
	cmd.Execute()
}
