package parse

import (
	"regexp"
	"strings"
)

var clusterPattern = regexp.MustCompile(`^-[a-z]{2,}$`)

// LongForm returns the double-dash form of key
func LongForm(key string) string {
	return "--" + key
}

// ShortForm returns the single-dash form of key, or "" when key is empty
func ShortForm(key string) string {
	if key == "" {
		return ""
	}

	return "-" + key
}

// IsFlag returns true when arg looks like a flag, i.e. starts with a dash
func IsFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

// IsCluster returns true when arg bundles two or more single-letter flags behind one dash,
// e.g. "-fqb"
func IsCluster(arg string) bool {
	return clusterPattern.MatchString(arg)
}

// ExpandClusters returns a new slice in which every short-flag cluster is replaced by one
// single-letter flag per character, in the original order. Other arguments are kept as-is.
func ExpandClusters(args []string) []string {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !IsCluster(arg) {
			expanded = append(expanded, arg)
			continue
		}
		for _, r := range arg[1:] {
			expanded = append(expanded, "-"+string(r))
		}
	}

	return expanded
}
