package cmdline

import (
	"github.com/napalu/cmdline/parse"
)

// NewSwitch creates a Switch triggered by --longKey
func NewSwitch(longKey string, configs ...ConfigureSwitchFunc) *Switch {
	s := &Switch{LongKey: longKey}
	for _, config := range configs {
		config(s)
	}

	return s
}

// Set applies further configuration to the switch
func (s *Switch) Set(configs ...ConfigureSwitchFunc) {
	for _, config := range configs {
		config(s)
	}
}

// parse records the switch when its leftmost trigger is found. An absent switch is not an error.
func (s *Switch) parse(st *parseState) error {
	pos := st.tokens.Index(parse.LongForm(s.LongKey), parse.ShortForm(s.ShortKey))
	if pos < 0 {
		return nil
	}

	st.log.Debug("switch consumed", "switch", s.LongKey)
	st.result.SetSwitch(s.LongKey)

	return st.tokens.Remove(pos, 1)
}
