package cmdline

import (
	"log/slog"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
)

// TransformFunc converts the raw string value of an Option before it is stored in the Result
type TransformFunc func(value string) (any, error)

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureSubcommandFunc is used when defining a Subcommand
type ConfigureSubcommandFunc func(subcommand *Subcommand)

// ConfigureOptionFunc is used when defining an Option
type ConfigureOptionFunc func(option *Option)

// ConfigureSwitchFunc is used when defining a Switch
type ConfigureSwitchFunc func(sw *Switch)

// ParseError is the error returned by Parser.Parse. Use errors.Is with the sentinels in the
// errs package to find out what went wrong.
type ParseError = errs.ParseError

// Option defines a value-bearing flag of a Subcommand. It is triggered by --LongKey or, when
// ShortKey is set, by -ShortKey. Options must not be modified once added to a Parser.
type Option struct {
	LongKey     string
	ShortKey    string
	Description string
	// Label names the value in documentation, e.g. BRANCH in "--branch BRANCH"
	Label string
	// Multiple makes the option claim every following token up to the next flag
	Multiple     bool
	Transform    TransformFunc
	defaultValue any
	hasDefault   bool
	collect      func(values []any) any
}

// Switch defines a boolean flag of a Subcommand. Switches are optional: absence means
// inactive.
type Switch struct {
	LongKey     string
	ShortKey    string
	Description string
}

// Subcommand is a named group of options and switches recognized as the first argument.
// Options are always consumed before switches, each in declaration order.
type Subcommand struct {
	Name        string
	Description string
	Options     []*Option
	Switches    []*Switch
}

// PrettyPrintConfig controls the layout of PrintUsageWith
type PrettyPrintConfig struct {
	// SubcommandPrefix precedes every subcommand line
	SubcommandPrefix string
	// FlagPrefix precedes every option and switch line
	FlagPrefix string
	// ContinuationPrefix precedes lines produced by wrapping a long option or switch line
	ContinuationPrefix string
}

// DefaultPrettyPrintConfig is used by PrintUsage
var DefaultPrettyPrintConfig = PrettyPrintConfig{
	SubcommandPrefix:   " + ",
	FlagPrefix:         " |  ",
	ContinuationPrefix: " |      ",
}

// parseState is the per-call state shared by the consumption steps of one Parse call
type parseState struct {
	tokens *parse.Tokens
	result *Result
	log    *slog.Logger
}
