package cmdline

import (
	"encoding/json"
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/cmdline/errs"
)

// Result holds what a single Parse call recognized: the subcommand name, the value of every
// option of that subcommand and the set of active switches. A Result is created empty by
// each Parse call and is never shared between calls.
type Result struct {
	subcommand string
	options    *orderedmap.OrderedMap[string, any]
	switches   map[string]struct{}
}

// NewResult returns an empty result
func NewResult() *Result {
	return &Result{
		options:  orderedmap.New[string, any](),
		switches: make(map[string]struct{}),
	}
}

// SetSubcommand records the matched subcommand
func (r *Result) SetSubcommand(name string) {
	r.subcommand = name
}

// SetOption stores value under key. A later call with the same key overwrites the earlier value.
func (r *Result) SetOption(key string, value any) {
	r.options.Set(key, value)
}

// SetSwitch marks the switch as active. Setting it twice has no further effect.
func (r *Result) SetSwitch(key string) {
	r.switches[key] = struct{}{}
}

// Subcommand returns the matched subcommand name, or "" when no subcommand matched
func (r *Result) Subcommand() string {
	return r.subcommand
}

// Option returns the value stored under key
func (r *Result) Option(key string) (any, bool) {
	return r.options.Get(key)
}

// HasOption returns true when a value is stored under key
func (r *Result) HasOption(key string) bool {
	_, found := r.options.Get(key)
	return found
}

// Options returns a copy of the stored option values
func (r *Result) Options() map[string]any {
	options := make(map[string]any, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		options[pair.Key] = pair.Value
	}

	return options
}

// Switch returns true when the switch was present
func (r *Result) Switch(key string) bool {
	_, found := r.switches[key]
	return found
}

// Switches returns the active switches sorted by name
func (r *Result) Switches() []string {
	keys := make([]string, 0, len(r.switches))
	for key := range r.switches {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// MarshalJSON renders the result as {"subcommand": ..., "options": {...}, "switches": [...]}.
// Options keep the order in which they were stored.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Subcommand string                              `json:"subcommand"`
		Options    *orderedmap.OrderedMap[string, any] `json:"options"`
		Switches   []string                            `json:"switches"`
	}{
		Subcommand: r.subcommand,
		Options:    r.options,
		Switches:   r.Switches(),
	})
}

// Get returns the option value stored under key as a T. It fails when the option is not set
// or holds a value of another type.
func Get[T any](r *Result, key string) (T, error) {
	var zero T
	value, found := r.Option(key)
	if !found {
		return zero, errs.ErrOptionNotSet.WithArgs(key)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, errs.ErrUnsupportedConversion.WithArgs(key, fmt.Sprintf("%T", value), fmt.Sprintf("%T", zero))
	}

	return typed, nil
}

// GetString returns the option value stored under key as a string. Non-string values are
// formatted with fmt.
func (r *Result) GetString(key string) (string, error) {
	value, found := r.Option(key)
	if !found {
		return "", errs.ErrOptionNotSet.WithArgs(key)
	}

	if s, ok := value.(string); ok {
		return s, nil
	}

	return fmt.Sprint(value), nil
}

// GetStrings returns the values of a multiple option. A single string value is returned as a
// one-element slice.
func (r *Result) GetStrings(key string) ([]string, error) {
	value, found := r.Option(key)
	if !found {
		return nil, errs.ErrOptionNotSet.WithArgs(key)
	}

	switch v := value.(type) {
	case []string:
		return append(make([]string, 0, len(v)), v...), nil
	case string:
		return []string{v}, nil
	case []any:
		strs := make([]string, len(v))
		for i, item := range v {
			strs[i] = fmt.Sprint(item)
		}
		return strs, nil
	default:
		return nil, errs.ErrUnsupportedConversion.WithArgs(key, fmt.Sprintf("%T", value), "[]string")
	}
}
