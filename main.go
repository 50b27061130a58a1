package main

import "github.com/fkleist/pinpoint/cmd"

func main() {
	cmd.Execute()
}
