package main

import "recruitmail/cmd"

func main() {
	cmd.Execute()
}
