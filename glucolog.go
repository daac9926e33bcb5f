package main

import (
	"github.com/tidepool-org/glucolog/api"
)

func main() {
	api.MainLoop()
}
