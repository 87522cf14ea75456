package main

import "shadow-sync/cmd"

func main() {
	cmd.Execute()
}
