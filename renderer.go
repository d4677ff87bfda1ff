package cmdline

import (
	"fmt"
	"io"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/util"
)

// Renderer produces the usage lines printed by Parser.PrintUsage
type Renderer interface {
	OptionUsage(o *Option) string
	SwitchUsage(s *Switch) string
	SubcommandUsage(s *Subcommand) string
}

// DefaultRenderer renders usage lines in the language of its parser
type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// OptionUsage generates a usage string for an option. It includes the long and short key,
// the description, the default value if any and whether the option is required.
//
//	--branch or -b "branch to clone" (defaults to: master) (optional)
func (r *DefaultRenderer) OptionUsage(o *Option) string {
	usage := r.flags(o.LongKey, o.ShortKey)
	if o.Description != "" {
		usage += " \"" + o.Description + "\""
	}

	if o.Multiple {
		usage += " (" + r.parser.T(errs.MsgMultipleKey) + ")"
	}

	if value, ok := o.Default(); ok {
		usage += fmt.Sprintf(" (%s: %v)", r.parser.T(errs.MsgDefaultsToKey), value)
		return usage + " (" + r.parser.T(errs.MsgOptionalKey) + ")"
	}

	return usage + " (" + r.parser.T(errs.MsgRequiredKey) + ")"
}

// SwitchUsage generates a usage string for a switch. Switches are always optional.
func (r *DefaultRenderer) SwitchUsage(s *Switch) string {
	usage := r.flags(s.LongKey, s.ShortKey)
	if s.Description != "" {
		usage += " \"" + s.Description + "\""
	}

	return usage + " (" + r.parser.T(errs.MsgOptionalKey) + ")"
}

// SubcommandUsage generates a usage string for a subcommand: its name and description
func (r *DefaultRenderer) SubcommandUsage(s *Subcommand) string {
	if s.Description == "" {
		return s.Name
	}

	return s.Name + " \"" + s.Description + "\""
}

func (r *DefaultRenderer) flags(longKey, shortKey string) string {
	usage := parse.LongForm(longKey)
	if shortKey != "" {
		usage += " " + r.parser.T(errs.MsgOrKey) + " " + parse.ShortForm(shortKey)
	}

	return usage
}

// PrintUsage writes the usage of every subcommand to writer using DefaultPrettyPrintConfig.
// Lines are wrapped to the terminal width when writer is a terminal.
func (p *Parser) PrintUsage(writer io.Writer) {
	p.PrintUsageWith(writer, &DefaultPrettyPrintConfig)
}

// PrintUsageWith writes the usage of every subcommand to writer using config.
// PrettyPrintConfig.SubcommandPrefix precedes each subcommand
// PrettyPrintConfig.FlagPrefix precedes each option and switch of a subcommand
// PrettyPrintConfig.ContinuationPrefix precedes wrapped lines
func (p *Parser) PrintUsageWith(writer io.Writer, config *PrettyPrintConfig) {
	width := util.TerminalWidth(writer, p.terminal, 0)

	if p.programName != "" {
		_, _ = fmt.Fprintf(writer, "%s: %s\n\n", p.T(errs.HelpUsageKey), p.programName)
	}

	for _, s := range p.Subcommands() {
		_, _ = fmt.Fprintln(writer, util.Wrap(config.SubcommandPrefix+p.renderer.SubcommandUsage(s), width, config.ContinuationPrefix))
		for _, o := range s.Options {
			_, _ = fmt.Fprintln(writer, util.Wrap(config.FlagPrefix+p.renderer.OptionUsage(o), width, config.ContinuationPrefix))
		}
		for _, sw := range s.Switches {
			_, _ = fmt.Fprintln(writer, util.Wrap(config.FlagPrefix+p.renderer.SwitchUsage(sw), width, config.ContinuationPrefix))
		}
	}
}
