package cmdline

import (
	"log/slog"

	"golang.org/x/text/language"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/util"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithSubcommand(NewSubcommand("clone",
//			WithOptions(
//				NewOption("repository", WithShortKey("r")),
//				NewOption("branch", WithShortKey("b"), WithDefault("master"))),
//			WithSwitches(
//				NewSwitch("quiet", WithSwitchShortKey("q"))))),
//		WithLanguage(language.German))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithSubcommand registers a subcommand. See Parser.AddSubcommand.
func WithSubcommand(subcommand *Subcommand) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddSubcommand(subcommand)
	}
}

// WithLogger sets the logger receiving debug events while parsing. By default events are discarded.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if logger == nil {
			*err = errs.ErrNilDefinition.WithArgs("logger")
			return
		}
		parser.log = logger
	}
}

// WithLanguage sets the language of error messages and usage text. The closest language
// held by the bundle is used.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.lang = parser.bundle.Match(lang)
	}
}

// WithBundle replaces the default message bundle. Apply it before WithLanguage.
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if bundle == nil {
			*err = errs.ErrNilDefinition.WithArgs("bundle")
			return
		}
		parser.bundle = bundle
		parser.lang = bundle.Match(parser.lang)
	}
}

// WithTerminal sets the terminal queried for the usage line width
func WithTerminal(terminal util.Terminal) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.terminal = terminal
	}
}

// WithProgramName sets the program name printed in the usage header
func WithProgramName(name string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.programName = name
	}
}

// WithRenderer sets the renderer used by PrintUsage
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if renderer == nil {
			*err = errs.ErrNilDefinition.WithArgs("renderer")
			return
		}
		parser.renderer = renderer
	}
}
