package completion

import (
	"strings"
)

// functionName turns a program name into a valid shell function name
func functionName(programName string) string {
	return "_" + strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(programName) + "_completion"
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

// forms returns the command-line forms of a flag, long form first
func (f Flag) forms() []string {
	forms := []string{"--" + f.Long}
	if f.Short != "" {
		forms = append(forms, "-"+f.Short)
	}

	return forms
}
