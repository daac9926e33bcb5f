package main

import (
	"github.com/tidepool-org/glucolog/cmd/glucoctl/command"
)

func main() {
	command.Execute()
}
