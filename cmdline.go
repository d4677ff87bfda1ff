// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cmdline provides declarative subcommand based command-line processing.
//
// A Parser holds named subcommands. Each Subcommand declares:
//
//	Options - value-bearing flags (--branch master or -b master), optionally with a default,
//	          a transform or in multiple mode (--files a.txt b.txt)
//	Switches - boolean flags (--verbose or -v)
//
// Parse consumes the arguments destructively: the first argument selects the subcommand, every
// option then removes the leftmost occurrence of its key together with its value(s), after which
// every switch removes its key. Anything left over is an error. Clusters of single-letter flags
// such as -fqb are expanded to -f -q -b before parsing.
//
// Usage text and a readme are derived from the same definitions.
package cmdline

import (
	"errors"
	"io"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/util"
)

// Parser recognizes subcommands, options and switches. Once configured a Parser is not
// modified by Parse and can be used from several goroutines.
type Parser struct {
	subcommands *orderedmap.OrderedMap[string, *Subcommand]
	log         *slog.Logger
	bundle      *i18n.Bundle
	lang        language.Tag
	renderer    Renderer
	terminal    util.Terminal
	programName string
}

// NewParser returns a parser without subcommands. Use NewParserWith or NewBuilder to
// configure one in a single step.
func NewParser() *Parser {
	p := &Parser{
		subcommands: orderedmap.New[string, *Subcommand](),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		bundle:      i18n.Default(),
		lang:        i18n.Default().GetDefaultLanguage(),
		terminal:    &util.DefaultTerminal{},
	}
	p.renderer = NewRenderer(p)

	return p
}

// AddSubcommand registers a subcommand. Subcommands are offered the arguments in the order
// they are added. The subcommand is validated first: names must not be empty, short keys
// must be a single character and no two flags of the subcommand may share a key.
func (p *Parser) AddSubcommand(subcommand *Subcommand) error {
	if subcommand == nil {
		return errs.ErrNilDefinition.WithArgs("subcommand")
	}

	if err := subcommand.validate(); err != nil {
		return err
	}

	if _, exists := p.subcommands.Get(subcommand.Name); exists {
		return errs.ErrDuplicateSubcommand.WithArgs(subcommand.Name)
	}
	p.subcommands.Set(subcommand.Name, subcommand)

	return nil
}

// Subcommands returns the registered subcommands in declaration order
func (p *Parser) Subcommands() []*Subcommand {
	subcommands := make([]*Subcommand, 0, p.subcommands.Len())
	for pair := p.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		subcommands = append(subcommands, pair.Value)
	}

	return subcommands
}

// Subcommand returns the subcommand registered under name
func (p *Parser) Subcommand(name string) (*Subcommand, bool) {
	return p.subcommands.Get(name)
}

// Parse processes args and returns what was recognized. args is not modified.
//
// Every returned error is a *ParseError wrapping one of errs.ErrRequiredOption,
// errs.ErrMissingValue, errs.ErrInvalidValue or errs.ErrUnexpectedInput. No partial
// result is returned on error.
func (p *Parser) Parse(args []string) (*Result, error) {
	expanded := parse.ExpandClusters(args)
	if len(expanded) != len(args) {
		p.log.Debug("expanded flag clusters", "args", args, "expanded", expanded)
	}

	st := &parseState{
		tokens: parse.NewTokens(expanded),
		result: NewResult(),
		log:    p.log,
	}

	for pair := p.subcommands.Oldest(); pair != nil; pair = pair.Next() {
		matched, err := pair.Value.tryParse(st)
		if err != nil {
			return nil, p.localize(err)
		}
		if matched {
			break
		}
	}

	if !st.tokens.Empty() {
		return nil, p.localize(errs.NewParseError(errs.ErrUnexpectedInput.WithArgs(st.tokens.String())))
	}

	return st.result, nil
}

// ParseString splits line using shell quoting rules and calls Parse. A line which cannot be
// split fails with a *ParseError wrapping errs.ErrInvalidLine.
func (p *Parser) ParseString(line string) (*Result, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, p.localize(errs.NewParseError(errs.ErrInvalidLine.Wrap(err)))
	}

	return p.Parse(args)
}

// Language returns the language used for error messages and usage text
func (p *Parser) Language() language.Tag {
	return p.lang
}

// Bundle returns the message bundle used by the parser
func (p *Parser) Bundle() *i18n.Bundle {
	return p.bundle
}

// SetRenderer replaces the renderer used by PrintUsage
func (p *Parser) SetRenderer(renderer Renderer) {
	p.renderer = renderer
}

// Renderer returns the renderer used by PrintUsage
func (p *Parser) Renderer() Renderer {
	return p.renderer
}

// T translates key in the language of the parser
func (p *Parser) T(key string, args ...interface{}) string {
	return p.bundle.TL(p.lang, key, args...)
}

func (p *Parser) messageProvider() i18n.MessageProvider {
	return i18n.NewBundleMessageProvider(p.bundle, p.lang)
}

func (p *Parser) localize(err error) error {
	var pe *errs.ParseError
	if errors.As(err, &pe) {
		return pe.WithProvider(p.messageProvider())
	}

	return err
}
