// Package util provides the value transforms and text helpers used by cmdline.
//
// Every transform has the signature func(string) (T, error) so it can be handed to
// cmdline.WithTransform directly:
//
//	cmdline.NewOption("from-step", cmdline.WithTransform(util.Int))
package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdline/errs"
)

// String returns value unchanged
func String(value string) (string, error) {
	return value, nil
}

// Int parses a base-10 integer
func Int(value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, errs.ErrParseInt.WithArgs(value)
	}

	return i, nil
}

// Int64 parses a base-10 64-bit integer
func Int64(value string) (int64, error) {
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errs.ErrParseInt.WithArgs(value)
	}

	return i, nil
}

// Uint parses a base-10 unsigned integer
func Uint(value string) (uint, error) {
	u, err := strconv.ParseUint(value, 10, 0)
	if err != nil {
		return 0, errs.ErrParseUint.WithArgs(value)
	}

	return uint(u), nil
}

// Float64 parses a floating point number
func Float64(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errs.ErrParseFloat.WithArgs(value)
	}

	return f, nil
}

// Bool parses the boolean forms accepted by strconv.ParseBool
func Bool(value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(value)
	}

	return b, nil
}

// Duration parses a Go duration such as "1h30m"
func Duration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errs.ErrParseDuration.WithArgs(value)
	}

	return d, nil
}

// Time parses dates and times in any layout understood by dateparse, in the local time zone
func Time(value string) (time.Time, error) {
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(value)
	}

	return t, nil
}

// UUID parses a UUID in any of the forms accepted by uuid.Parse
func UUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errs.ErrParseUUID.WithArgs(value)
	}

	return id, nil
}

// Version parses a semantic version. A leading "v" and missing minor or patch parts are accepted.
func Version(value string) (*semver.Version, error) {
	v, err := semver.NewVersion(value)
	if err != nil {
		return nil, errs.ErrParseVersion.WithArgs(value)
	}

	return v, nil
}

// Upper converts value to upper case
func Upper(value string) (string, error) {
	return strings.ToUpper(value), nil
}

// Lower converts value to lower case
func Lower(value string) (string, error) {
	return strings.ToLower(value), nil
}

// KebabCase converts value to kebab case, e.g. "ReleaseBranch" becomes "release-branch"
func KebabCase(value string) (string, error) {
	return strcase.ToKebab(value), nil
}

// OneOf returns a transform accepting only the given values
func OneOf(accepted ...string) func(string) (string, error) {
	return func(value string) (string, error) {
		for _, a := range accepted {
			if value == a {
				return value, nil
			}
		}

		return "", errs.ErrNotOneOf.WithArgs(value, strings.Join(accepted, ", "))
	}
}
