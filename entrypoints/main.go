package main

import (
	"github.com/Laisky/devhub-api/cmd"
)

func main() {
	cmd.Execute()
}
