package schema

import (
	"sort"
	"strings"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/util"
)

const oneOfPrefix = "oneof:"

var transforms = map[string]cmdline.ConfigureOptionFunc{
	"string":   cmdline.WithTransform(util.String),
	"int":      cmdline.WithTransform(util.Int),
	"int64":    cmdline.WithTransform(util.Int64),
	"uint":     cmdline.WithTransform(util.Uint),
	"float":    cmdline.WithTransform(util.Float64),
	"bool":     cmdline.WithTransform(util.Bool),
	"duration": cmdline.WithTransform(util.Duration),
	"time":     cmdline.WithTransform(util.Time),
	"uuid":     cmdline.WithTransform(util.UUID),
	"version":  cmdline.WithTransform(util.Version),
	"upper":    cmdline.WithTransform(util.Upper),
	"lower":    cmdline.WithTransform(util.Lower),
	"kebab":    cmdline.WithTransform(util.KebabCase),
}

// ByName returns the option configuration applying the named transform. Besides the names
// returned by Transforms, "oneof:a,b,c" restricts values to the listed ones.
func ByName(name string) (cmdline.ConfigureOptionFunc, error) {
	if accepted, ok := strings.CutPrefix(name, oneOfPrefix); ok {
		values := strings.Split(accepted, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		return cmdline.WithTransform(util.OneOf(values...)), nil
	}

	if transform, ok := transforms[strings.ToLower(name)]; ok {
		return transform, nil
	}

	return nil, errs.ErrUnknownTransform.WithArgs(name)
}

// Transforms returns the known transform names, sorted
func Transforms() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
