package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Format(provider MessageProvider) string
}

// MessageProvider returns the raw message template of a key
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider using a bundle and a preferred language
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider creates a provider which prefers lang when looking up messages
func NewBundleMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
		lang:   lang,
	}
}

// GetMessage returns the message for the given key, or the key itself when the bundle
// does not know it
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	if msg, ok := p.bundle.Lookup(p.lang, key); ok {
		return msg
	}

	return key
}

// TrError is a translatable error with optional format arguments and an optional wrapped error.
// Copies made with WithArgs or Wrap keep the identity of the error they were made from, so
//
//	errors.Is(ErrSomething.WithArgs("x"), ErrSomething)
//
// holds.
type TrError struct {
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error formats the message with the default bundle in its default language
func (e *TrError) Error() string {
	return e.Format(NewBundleMessageProvider(Default(), Default().GetDefaultLanguage()))
}

// Format renders the message using provider. A wrapped translatable error is rendered with
// the same provider.
func (e *TrError) Format(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if tr, ok := e.wrapped.(TranslatableError); ok {
		return msg + ": " + tr.Format(provider)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}
