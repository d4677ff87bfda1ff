package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

%s() {
    local line state

    _arguments -C \
        '1: :->subcommand' \
        '*:: :->args'

    case $state in
        subcommand)
            _values 'subcommands'`, programName, fn))

	for _, s := range data.Subcommands {
		script.WriteString(fmt.Sprintf(` \
                '%s[%s]'`, s.Name, escapeZsh(s.Description)))
	}

	script.WriteString(`
            ;;
        args)
            case $line[1] in`)

	for _, s := range data.Subcommands {
		if len(s.Flags) == 0 {
			continue
		}

		script.WriteString(fmt.Sprintf(`
                %s)
                    _arguments`, s.Name))
		for _, f := range s.Flags {
			spec := "[" + escapeZsh(f.Description) + "]"
			if f.TakesValue {
				spec += ":value:"
			}
			for _, form := range f.forms() {
				script.WriteString(fmt.Sprintf(` \
                        '%s%s'`, form, spec))
			}
		}
		script.WriteString(`
                    ;;`)
	}

	script.WriteString(fmt.Sprintf(`
            esac
            ;;
    esac
}

%s "$@"
`, fn))

	return script.String()
}
