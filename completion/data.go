// Package completion generates shell completion scripts for the subcommands, options and
// switches of a parser.
package completion

import (
	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/errs"
)

// Flag is an option or switch offered for completion
type Flag struct {
	Long        string
	Short       string
	Description string
	// TakesValue is true for options: the token after the flag is a value, not a flag
	TakesValue bool
}

// Subcommand is a subcommand offered for completion together with its flags
type Subcommand struct {
	Name        string
	Description string
	Flags       []Flag
}

// Data is the completion data of a parser
type Data struct {
	Subcommands []Subcommand
}

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data Data) string
}

var generators = map[string]Generator{
	"bash": &BashGenerator{},
	"zsh":  &ZshGenerator{},
	"fish": &FishGenerator{},
}

// GetGenerator returns the generator of shell: bash, zsh or fish
func GetGenerator(shell string) (Generator, error) {
	g, ok := generators[shell]
	if !ok {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return g, nil
}

// FromParser collects the completion data of parser in declaration order. Options come
// before switches within each subcommand.
func FromParser(parser *cmdline.Parser) Data {
	var data Data
	for _, s := range parser.Subcommands() {
		sub := Subcommand{Name: s.Name, Description: s.Description}
		for _, o := range s.Options {
			sub.Flags = append(sub.Flags, Flag{Long: o.LongKey, Short: o.ShortKey, Description: o.Description, TakesValue: true})
		}
		for _, sw := range s.Switches {
			sub.Flags = append(sub.Flags, Flag{Long: sw.LongKey, Short: sw.ShortKey, Description: sw.Description})
		}
		data.Subcommands = append(data.Subcommands, sub)
	}

	return data
}

// Generate renders the completion script of parser for shell
func Generate(shell, programName string, parser *cmdline.Parser) (string, error) {
	g, err := GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return g.Generate(programName, FromParser(parser)), nil
}
