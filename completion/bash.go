package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

// Generate completes subcommand names in first position and the flags of the typed
// subcommand afterwards. Nothing is offered right after an option since a value is expected.
func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	names := make([]string, len(data.Subcommands))
	for i, s := range data.Subcommands {
		names[i] = s.Name
	}

	script.WriteString(fmt.Sprintf(`#!/bin/bash

%s() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return
    fi

    case "${COMP_WORDS[1]}" in`, fn, strings.Join(names, " ")))

	for _, s := range data.Subcommands {
		if len(s.Flags) == 0 {
			continue
		}

		var flags, valued []string
		for _, f := range s.Flags {
			flags = append(flags, f.forms()...)
			if f.TakesValue {
				valued = append(valued, f.forms()...)
			}
		}

		script.WriteString(fmt.Sprintf(`
        %s)`, s.Name))
		if len(valued) > 0 {
			script.WriteString(fmt.Sprintf(`
            case "$prev" in
                %s)
                    return
                    ;;
            esac`, strings.Join(valued, "|")))
		}
		script.WriteString(fmt.Sprintf(`
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;`, strings.Join(flags, " ")))
	}

	script.WriteString(fmt.Sprintf(`
    esac
}

complete -F %s %s
`, fn, programName))

	return script.String()
}
