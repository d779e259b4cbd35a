package main

import (
	"github.com/RakshithaNagaraju74/MedWell/api"
)

func main() {
	api.MainLoop()
}
