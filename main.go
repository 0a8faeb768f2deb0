package main

import (
	"github.com/axellelanca/pokedex/cmd"

	// Subcommands register themselves on the root command in their init().
	_ "github.com/axellelanca/pokedex/cmd/cli"
	_ "github.com/axellelanca/pokedex/cmd/server"
)

func main() {
	cmd.Execute()
}
