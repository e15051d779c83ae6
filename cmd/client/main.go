package main

import "securenest/cmd/client/cmd"

func main() {
	cmd.Execute()
}
