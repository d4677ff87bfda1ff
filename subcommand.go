package cmdline

import (
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
)

// NewSubcommand creates a Subcommand recognized when the first argument equals name
func NewSubcommand(name string, configs ...ConfigureSubcommandFunc) *Subcommand {
	s := &Subcommand{Name: name}
	for _, config := range configs {
		config(s)
	}

	return s
}

// Set applies further configuration to the subcommand
func (s *Subcommand) Set(configs ...ConfigureSubcommandFunc) {
	for _, config := range configs {
		config(s)
	}
}

// Option returns the option with the given long key
func (s *Subcommand) Option(longKey string) (*Option, bool) {
	for _, o := range s.Options {
		if o.LongKey == longKey {
			return o, true
		}
	}

	return nil, false
}

// Switch returns the switch with the given long key
func (s *Subcommand) Switch(longKey string) (*Switch, bool) {
	for _, sw := range s.Switches {
		if sw.LongKey == longKey {
			return sw, true
		}
	}

	return nil, false
}

// tryParse does nothing unless the first token equals the subcommand name. On a match the
// name is consumed, then every option and finally every switch in declaration order.
func (s *Subcommand) tryParse(st *parseState) (bool, error) {
	if st.tokens.Empty() || st.tokens.Front() != s.Name {
		return false, nil
	}

	st.tokens.Shift()
	st.log.Debug("subcommand matched", "subcommand", s.Name)
	st.result.SetSubcommand(s.Name)

	for _, o := range s.Options {
		if err := o.parse(st); err != nil {
			return true, err
		}
	}

	for _, sw := range s.Switches {
		if err := sw.parse(st); err != nil {
			return true, err
		}
	}

	return true, nil
}

// validate checks names and short keys and rejects flags which would shadow each other
func (s *Subcommand) validate() error {
	if s.Name == "" {
		return errs.ErrEmptyName.WithArgs("subcommand")
	}

	seen := make(map[string]struct{}, 2*(len(s.Options)+len(s.Switches)))
	claim := func(longKey, shortKey, kind string) error {
		if longKey == "" {
			return errs.ErrEmptyName.WithArgs(kind)
		}
		if shortKey != "" && (utf8.RuneCountInString(shortKey) != 1 || shortKey == "-") {
			return errs.ErrInvalidShortKey.WithArgs(shortKey, parse.LongForm(longKey))
		}

		for _, trigger := range []string{parse.LongForm(longKey), parse.ShortForm(shortKey)} {
			if trigger == "" {
				continue
			}
			if _, exists := seen[trigger]; exists {
				return errs.ErrDuplicateKey.WithArgs(trigger, s.Name)
			}
			seen[trigger] = struct{}{}
		}

		return nil
	}

	for _, o := range s.Options {
		if o == nil {
			return errs.ErrNilDefinition.WithArgs("option")
		}
		if err := claim(o.LongKey, o.ShortKey, "option"); err != nil {
			return err
		}
	}

	for _, sw := range s.Switches {
		if sw == nil {
			return errs.ErrNilDefinition.WithArgs("switch")
		}
		if err := claim(sw.LongKey, sw.ShortKey, "switch"); err != nil {
			return err
		}
	}

	return nil
}
