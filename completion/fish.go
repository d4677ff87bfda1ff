package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf("complete -c %s -f\n", programName))

	for _, s := range data.Subcommands {
		script.WriteString(fmt.Sprintf("complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			programName, s.Name, escapeFish(s.Description)))
	}

	for _, s := range data.Subcommands {
		for _, f := range s.Flags {
			cmd := fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from %s' -l %s", programName, s.Name, f.Long)
			if f.Short != "" {
				cmd += " -s " + f.Short
			}
			if f.TakesValue {
				cmd += " -r"
			}
			if f.Description != "" {
				cmd += fmt.Sprintf(" -d '%s'", escapeFish(f.Description))
			}
			script.WriteString(cmd + "\n")
		}
	}

	return script.String()
}
