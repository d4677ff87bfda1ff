package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		width  int
		indent string
		want   string
	}{
		{
			name:  "fits",
			line:  "--branch or -b",
			width: 80,
			want:  "--branch or -b",
		},
		{
			name:  "disabled",
			line:  "aaa bbb ccc",
			width: 0,
			want:  "aaa bbb ccc",
		},
		{
			name:   "wraps with indent",
			line:   "aaa bbb ccc",
			width:  7,
			indent: "  ",
			want:   "aaa bbb\n  ccc",
		},
		{
			name:  "long word is kept whole",
			line:  "abcdefghij k",
			width: 5,
			want:  "abcdefghij\nk",
		},
		{
			name:   "leading spaces are preserved",
			line:   " |  --branch \"name of the branch\"",
			width:  20,
			indent: " |    ",
			want:   " |  --branch \"name\n |    of the branch\"",
		},
		{
			name:  "counts runes not bytes",
			line:  "ääää öööö",
			width: 9,
			want:  "ääää öööö",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.line, tt.width, tt.indent))
		})
	}
}
