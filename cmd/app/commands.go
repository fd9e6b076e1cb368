package main

import (
	"github.com/urfave/cli/v3"
)

const (
	categorySystem = "system"
	categoryCard   = "card"
)

// getCommands lists every subcommand, tagged with its help category.
func getCommands(version string) []*cli.Command {
	var cmds []*cli.Command
	for _, group := range []struct {
		category string
		commands []*cli.Command
	}{
		{category: categorySystem, commands: getSystemCommands(version)},
		{category: categoryCard, commands: getCardCommands()},
	} {
		for _, cmd := range group.commands {
			cmd.Category = group.category
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
