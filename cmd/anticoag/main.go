package main

import "github.com/tidepool-org/anticoag/cmd/anticoag/command"

func main() {
	command.Execute()
}
