// Package errs holds the errors returned by cmdline. Every error is an i18n.TrError so
// its message can be rendered in any language held by an i18n.Bundle.
package errs

import (
	"errors"

	"github.com/napalu/cmdline/i18n"
)

// Parse errors - always returned wrapped in a *ParseError
var (
	ErrRequiredOption  = i18n.NewError(ErrRequiredOptionKey)
	ErrMissingValue    = i18n.NewError(ErrMissingValueKey)
	ErrUnexpectedInput = i18n.NewError(ErrUnexpectedInputKey)
	ErrInvalidValue    = i18n.NewError(ErrInvalidValueKey)
	ErrInvalidLine     = i18n.NewError(ErrInvalidLineKey)
)

// Schema construction and result access errors
var (
	ErrEmptyName             = i18n.NewError(ErrEmptyNameKey)
	ErrInvalidShortKey       = i18n.NewError(ErrInvalidShortKeyKey)
	ErrDuplicateSubcommand   = i18n.NewError(ErrDuplicateSubcommandKey)
	ErrDuplicateKey          = i18n.NewError(ErrDuplicateKeyKey)
	ErrNoSubcommand          = i18n.NewError(ErrNoSubcommandKey)
	ErrNilDefinition         = i18n.NewError(ErrNilDefinitionKey)
	ErrUnknownTransform      = i18n.NewError(ErrUnknownTransformKey)
	ErrUnsupportedFormat     = i18n.NewError(ErrUnsupportedFormatKey)
	ErrSchemaDecode          = i18n.NewError(ErrSchemaDecodeKey)
	ErrOptionNotSet          = i18n.NewError(ErrOptionNotSetKey)
	ErrUnsupportedConversion = i18n.NewError(ErrUnsupportedConversionKey)
	ErrUnsupportedShell      = i18n.NewError(ErrUnsupportedShellKey)
	ErrInvalidDefault        = i18n.NewError(ErrInvalidDefaultKey)
	ErrDefaultNotScalar      = i18n.NewError(ErrDefaultNotScalarKey)
)

// Value conversion errors
var (
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseUint     = i18n.NewError(ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
	ErrParseVersion  = i18n.NewError(ErrParseVersionKey)
	ErrNotOneOf      = i18n.NewError(ErrNotOneOfKey)
)

// ParseError is the single error kind returned by Parser.Parse. It carries the
// translatable cause and the provider used to render its message.
type ParseError struct {
	err      i18n.TranslatableError
	provider i18n.MessageProvider
}

// NewParseError wraps err in a ParseError
func NewParseError(err i18n.TranslatableError) *ParseError {
	return &ParseError{err: err}
}

// WithProvider returns a copy of the error which renders its message with provider
func (e *ParseError) WithProvider(provider i18n.MessageProvider) *ParseError {
	return &ParseError{
		err:      e.err,
		provider: provider,
	}
}

func (e *ParseError) Error() string {
	if e.provider == nil {
		return e.err.Error()
	}

	return e.err.Format(e.provider)
}

// Key returns the translation key of the cause
func (e *ParseError) Key() string {
	return e.err.Key()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// IsParseError reports whether err is, or wraps, a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
