package cmdline

// WithShortKey sets the single character alias of an option, e.g. "b" for -b
func WithShortKey(shortKey string) ConfigureOptionFunc {
	return func(option *Option) {
		option.ShortKey = shortKey
	}
}

// WithDefault sets the value stored when the option is absent. An option with a default is
// optional; the default is stored as given, without running the transform.
func WithDefault(value any) ConfigureOptionFunc {
	return func(option *Option) {
		option.defaultValue = value
		option.hasDefault = true
	}
}

// WithoutDefault removes a previously configured default, making the option required again
func WithoutDefault() ConfigureOptionFunc {
	return func(option *Option) {
		option.defaultValue = nil
		option.hasDefault = false
	}
}

// SetMultiple makes the option claim every following token until the next token starting
// with a dash. Values are stored as a slice in order of appearance.
func SetMultiple(multiple bool) ConfigureOptionFunc {
	return func(option *Option) {
		option.Multiple = multiple
	}
}

// WithTransform converts each value with fn before it is stored. Multiple options configured
// this way store a []T.
//
//	NewOption("count", WithTransform(util.Int))
func WithTransform[T any](fn func(value string) (T, error)) ConfigureOptionFunc {
	return func(option *Option) {
		option.Transform = func(value string) (any, error) {
			v, err := fn(value)
			if err != nil {
				return nil, err
			}
			return v, nil
		}
		option.collect = func(values []any) any {
			typed := make([]T, len(values))
			for i, v := range values {
				typed[i], _ = v.(T)
			}
			return typed
		}
	}
}

// WithTransformFunc sets an untyped transform. Multiple options configured this way store a []any.
func WithTransformFunc(fn TransformFunc) ConfigureOptionFunc {
	return func(option *Option) {
		option.Transform = fn
		option.collect = nil
	}
}

// WithDescription sets the text shown for the option in usage and readme output
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Description = description
	}
}

// WithLabel names the option value in documentation
func WithLabel(label string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Label = label
	}
}

// WithSwitchShortKey sets the single character alias of a switch
func WithSwitchShortKey(shortKey string) ConfigureSwitchFunc {
	return func(sw *Switch) {
		sw.ShortKey = shortKey
	}
}

// WithSwitchDescription sets the text shown for the switch in usage and readme output
func WithSwitchDescription(description string) ConfigureSwitchFunc {
	return func(sw *Switch) {
		sw.Description = description
	}
}

// WithOptions appends options to a subcommand. Options are consumed in the order they are added.
func WithOptions(options ...*Option) ConfigureSubcommandFunc {
	return func(subcommand *Subcommand) {
		subcommand.Options = append(subcommand.Options, options...)
	}
}

// WithSwitches appends switches to a subcommand. Switches are consumed after every option.
func WithSwitches(switches ...*Switch) ConfigureSubcommandFunc {
	return func(subcommand *Subcommand) {
		subcommand.Switches = append(subcommand.Switches, switches...)
	}
}

// WithSubcommandDescription sets the text shown for the subcommand in usage and readme output
func WithSubcommandDescription(description string) ConfigureSubcommandFunc {
	return func(subcommand *Subcommand) {
		subcommand.Description = description
	}
}
