package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
