package cmdline

import (
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
)

// NewOption creates an Option triggered by --longKey. Configure it with the With... option
// functions, e.g.
//
//	NewOption("branch", WithShortKey("b"), WithDefault("master"))
func NewOption(longKey string, configs ...ConfigureOptionFunc) *Option {
	o := &Option{LongKey: longKey}
	for _, config := range configs {
		config(o)
	}

	return o
}

// Default returns the default value of the option and whether one was set
func (o *Option) Default() (any, bool) {
	return o.defaultValue, o.hasDefault
}

// Required returns true when the option has no default and must therefore be present
func (o *Option) Required() bool {
	return !o.hasDefault
}

// Set applies further configuration to the option
func (o *Option) Set(configs ...ConfigureOptionFunc) {
	for _, config := range configs {
		config(o)
	}
}

func (o *Option) triggers() []string {
	return []string{parse.LongForm(o.LongKey), parse.ShortForm(o.ShortKey)}
}

// flagNames renders the option as "--long" or "--long (-s)"
func (o *Option) flagNames() string {
	if o.ShortKey == "" {
		return parse.LongForm(o.LongKey)
	}

	return parse.LongForm(o.LongKey) + " (" + parse.ShortForm(o.ShortKey) + ")"
}

func (o *Option) transform(raw string) (any, error) {
	if o.Transform == nil {
		return raw, nil
	}

	value, err := o.Transform(raw)
	if err != nil {
		return nil, errs.NewParseError(errs.ErrInvalidValue.WithArgs(raw, o.flagNames()).Wrap(err))
	}

	return value, nil
}

// ConvertValue returns what Parse stores for raw when the option is in single mode
func (o *Option) ConvertValue(raw string) (any, error) {
	return o.transform(raw)
}

// ConvertValues returns what Parse stores for raw when the option is in multiple mode: a
// []string without transform, a []T for WithTransform[T] and a []any otherwise
func (o *Option) ConvertValues(raw []string) (any, error) {
	values := make([]any, 0, len(raw))
	for _, r := range raw {
		value, err := o.transform(r)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return o.collectValues(values), nil
}

// parse locates the leftmost trigger of the option, stores its value(s) in the result and
// removes the consumed tokens
func (o *Option) parse(st *parseState) error {
	pos := st.tokens.Index(o.triggers()...)
	if pos < 0 {
		if o.hasDefault {
			st.log.Debug("option default applied", "option", o.LongKey, "default", o.defaultValue)
			st.result.SetOption(o.LongKey, o.defaultValue)
			return nil
		}

		return errs.NewParseError(errs.ErrRequiredOption.WithArgs(o.flagNames()))
	}

	if o.Multiple {
		return o.parseMultiple(st, pos)
	}

	raw, err := st.tokens.ArgAt(pos + 1)
	if err != nil {
		return errs.NewParseError(errs.ErrMissingValue.WithArgs(o.flagNames()))
	}

	value, err := o.transform(raw)
	if err != nil {
		return err
	}

	st.log.Debug("option consumed", "option", o.LongKey, "value", raw)
	st.result.SetOption(o.LongKey, value)

	return st.tokens.Remove(pos, 2)
}

// parseMultiple removes the trigger and then claims every following token up to the next
// flag, an empty token or the end of input. A trigger without values stores an empty slice.
func (o *Option) parseMultiple(st *parseState, pos int) error {
	if err := st.tokens.Remove(pos, 1); err != nil {
		return err
	}

	values := []any{}
	for {
		raw, err := st.tokens.ArgAt(pos)
		if err != nil || raw == "" || parse.IsFlag(raw) {
			break
		}

		value, err := o.transform(raw)
		if err != nil {
			return err
		}
		values = append(values, value)

		if err := st.tokens.Remove(pos, 1); err != nil {
			return err
		}
	}

	st.log.Debug("option consumed", "option", o.LongKey, "count", len(values))
	st.result.SetOption(o.LongKey, o.collectValues(values))

	return nil
}

// collectValues turns the collected values into a typed slice: []string when no transform
// is set, []T for options configured with WithTransform[T], []any otherwise
func (o *Option) collectValues(values []any) any {
	if o.collect != nil {
		return o.collect(values)
	}

	if o.Transform == nil {
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i], _ = v.(string)
		}
		return strs
	}

	return values
}
