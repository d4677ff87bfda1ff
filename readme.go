package cmdline

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
)

// ReadmeProvider supplies the prose of a readme generated by Parser.Readme. The structure
// (subcommands, keys and short keys) comes from the parser definitions.
type ReadmeProvider interface {
	Title() string
	Description() string
	ScriptName() string
	SubcommandDescription(subcommand string) string
	OptionLabel(subcommand, optionKey string) string
	OptionDescription(subcommand, optionKey string) string
	SwitchLabel(subcommand, switchKey string) string
}

// Readme renders a markdown readme describing every subcommand, option and switch
func (p *Parser) Readme(provider ReadmeProvider) string {
	var sb strings.Builder

	sb.WriteString("# " + provider.Title() + "\n\n")
	if description := provider.Description(); description != "" {
		sb.WriteString(description + "\n\n")
	}
	sb.WriteString("## " + p.T(errs.HelpSubcommandsKey) + "\n")

	for _, s := range p.Subcommands() {
		sb.WriteString("\n")
		sb.WriteString(indent(2, "$ "+provider.ScriptName()+" "+s.Name))
		if description := provider.SubcommandDescription(s.Name); description != "" {
			sb.WriteString(indent(4, description))
		}

		if len(s.Options) > 0 || len(s.Switches) > 0 {
			sb.WriteString("\n" + indent(4, "## "+p.T(errs.HelpOptionsKey)))
		}

		for _, o := range s.Options {
			label := provider.OptionLabel(s.Name, o.LongKey)
			sb.WriteString(indent(6, withLabel(parse.LongForm(o.LongKey), label)))
			if o.ShortKey != "" {
				sb.WriteString(indent(6, withLabel(parse.ShortForm(o.ShortKey), label)))
			}
			if description := provider.OptionDescription(s.Name, o.LongKey); description != "" {
				sb.WriteString(indent(8, description))
			}
		}

		for _, sw := range s.Switches {
			sb.WriteString(indent(6, parse.LongForm(sw.LongKey)))
			if sw.ShortKey != "" {
				sb.WriteString(indent(6, parse.ShortForm(sw.ShortKey)))
			}
			if label := provider.SwitchLabel(s.Name, sw.LongKey); label != "" {
				sb.WriteString(indent(8, label))
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func withLabel(flag, label string) string {
	if label == "" {
		return flag
	}

	return flag + " " + label
}

// indent prefixes every line of text with n spaces and terminates it with a newline
func indent(n int, text string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pad + strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n") + "\n"
}

// DefinitionProvider is a ReadmeProvider which takes its prose from the Description and
// Label fields of the parser definitions. Missing labels default to the upper snake case
// form of the option key, e.g. FROM_STEP for from-step.
type DefinitionProvider struct {
	title       string
	description string
	scriptName  string
	parser      *Parser
}

// NewDefinitionProvider creates a provider for parser
func NewDefinitionProvider(title, description, scriptName string, parser *Parser) *DefinitionProvider {
	return &DefinitionProvider{
		title:       title,
		description: description,
		scriptName:  scriptName,
		parser:      parser,
	}
}

func (d *DefinitionProvider) Title() string {
	return d.title
}

func (d *DefinitionProvider) Description() string {
	return d.description
}

func (d *DefinitionProvider) ScriptName() string {
	return d.scriptName
}

func (d *DefinitionProvider) SubcommandDescription(subcommand string) string {
	if s, ok := d.parser.Subcommand(subcommand); ok {
		return s.Description
	}

	return ""
}

func (d *DefinitionProvider) OptionLabel(subcommand, optionKey string) string {
	o, ok := d.option(subcommand, optionKey)
	if !ok {
		return ""
	}
	if o.Label != "" {
		return o.Label
	}

	return strcase.ToScreamingSnake(o.LongKey)
}

func (d *DefinitionProvider) OptionDescription(subcommand, optionKey string) string {
	if o, ok := d.option(subcommand, optionKey); ok {
		return o.Description
	}

	return ""
}

func (d *DefinitionProvider) SwitchLabel(subcommand, switchKey string) string {
	s, ok := d.parser.Subcommand(subcommand)
	if !ok {
		return ""
	}
	if sw, ok := s.Switch(switchKey); ok {
		return sw.Description
	}

	return ""
}

func (d *DefinitionProvider) option(subcommand, optionKey string) (*Option, bool) {
	s, ok := d.parser.Subcommand(subcommand)
	if !ok {
		return nil, false
	}

	return s.Option(optionKey)
}
