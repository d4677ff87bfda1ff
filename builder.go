package cmdline

import (
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
)

// Builder assembles a Parser step by step. Options and switches are added to the most
// recently added subcommand. Errors are collected and reported by Build.
//
//	parser, err := NewBuilder().
//		AddSubcommand("clone").
//		AddOption("repository", WithShortKey("r")).
//		AddOption("branch", WithShortKey("b"), WithDefault("master")).
//		AddSwitch("quiet", WithSwitchShortKey("q")).
//		Build()
//
// A Builder must not be used after Build.
type Builder struct {
	subcommands   []*Subcommand
	current       *Subcommand
	parserConfigs []ConfigureParserFunc
	err           error
}

// SubcommandBuilder adds options and switches to a single subcommand
type SubcommandBuilder struct {
	subcommand *Subcommand
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSubcommand starts a new subcommand. Following AddOption and AddSwitch calls apply to it.
func (b *Builder) AddSubcommand(name string, configs ...ConfigureSubcommandFunc) *Builder {
	b.current = NewSubcommand(name, configs...)
	b.subcommands = append(b.subcommands, b.current)

	return b
}

// AddOption adds an option to the current subcommand
func (b *Builder) AddOption(longKey string, configs ...ConfigureOptionFunc) *Builder {
	if b.current == nil {
		b.fail(errs.ErrNoSubcommand.WithArgs(parse.LongForm(longKey)))
		return b
	}
	b.current.Options = append(b.current.Options, NewOption(longKey, configs...))

	return b
}

// AddSwitch adds a switch to the current subcommand
func (b *Builder) AddSwitch(longKey string, configs ...ConfigureSwitchFunc) *Builder {
	if b.current == nil {
		b.fail(errs.ErrNoSubcommand.WithArgs(parse.LongForm(longKey)))
		return b
	}
	b.current.Switches = append(b.current.Switches, NewSwitch(longKey, configs...))

	return b
}

// Subcommand adds a subcommand whose options and switches are declared by define
//
//	NewBuilder().Subcommand("push", func(s *SubcommandBuilder) {
//		s.Option("remote", WithDefault("origin")).Switch("force", WithSwitchShortKey("f"))
//	})
func (b *Builder) Subcommand(name string, define func(s *SubcommandBuilder), configs ...ConfigureSubcommandFunc) *Builder {
	b.AddSubcommand(name, configs...)
	if define != nil {
		define(&SubcommandBuilder{subcommand: b.current})
	}

	return b
}

// WithParserConfig adds configuration applied to the parser created by Build
func (b *Builder) WithParserConfig(configs ...ConfigureParserFunc) *Builder {
	b.parserConfigs = append(b.parserConfigs, configs...)

	return b
}

// Build validates the definitions and returns the parser. The first error found is returned.
func (b *Builder) Build() (*Parser, error) {
	if b.err != nil {
		return nil, b.err
	}

	parser, err := NewParserWith(b.parserConfigs...)
	if err != nil {
		return nil, err
	}

	for _, subcommand := range b.subcommands {
		if err := parser.AddSubcommand(subcommand); err != nil {
			return nil, err
		}
	}

	return parser, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Option adds an option to the subcommand
func (s *SubcommandBuilder) Option(longKey string, configs ...ConfigureOptionFunc) *SubcommandBuilder {
	s.subcommand.Options = append(s.subcommand.Options, NewOption(longKey, configs...))

	return s
}

// Switch adds a switch to the subcommand
func (s *SubcommandBuilder) Switch(longKey string, configs ...ConfigureSwitchFunc) *SubcommandBuilder {
	s.subcommand.Switches = append(s.subcommand.Switches, NewSwitch(longKey, configs...))

	return s
}

// Description sets the description of the subcommand
func (s *SubcommandBuilder) Description(description string) *SubcommandBuilder {
	s.subcommand.Description = description

	return s
}
