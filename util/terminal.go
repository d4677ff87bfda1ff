package util

import (
	"io"

	"golang.org/x/term"
)

// Terminal abstracts the terminal queries made when rendering usage text
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements Terminal with golang.org/x/term
type DefaultTerminal struct{}

// IsTerminal checks if fd refers to a terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal behind fd
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

type fileDescriptor interface {
	Fd() uintptr
}

// TerminalWidth returns the number of columns of w when w is attached to a terminal.
// Otherwise, or when the size cannot be determined, fallback is returned.
func TerminalWidth(w io.Writer, terminal Terminal, fallback int) int {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	f, ok := w.(fileDescriptor)
	if !ok {
		return fallback
	}

	fd := int(f.Fd())
	if !terminal.IsTerminal(fd) {
		return fallback
	}

	width, _, err := terminal.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
