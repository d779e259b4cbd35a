package main

import (
	"github.com/RakshithaNagaraju74/MedWell/cmd/admin/command"
)

func main() {
	command.Execute()
}
