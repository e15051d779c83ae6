package main

import "securenest/cmd/server/cmd"

func main() {
	cmd.Execute()
}
