package main

import "vettr/cmd"

func main() {
	cmd.Execute()
}
