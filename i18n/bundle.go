// Package i18n provides the message bundles used to render errors and usage text.
//
// The default bundle is loaded from the embedded locales directory and is shared by
// every parser which is not configured with its own bundle.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
)

// Bundle holds translations per language. It is safe for concurrent use.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle built from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh copy of the embedded locales which can be modified without
// affecting Default
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations. English is the default language.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. Each file holds a flat
// JSON object of key to message. The default language (English) must be present.
func NewBundleWithFS(fsys fs.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(fsys, dirPrefix)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		data, err := fs.ReadFile(fsys, path.Join(dirPrefix, entry.Name()))
		if err != nil {
			return nil, err
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, entry.Name(), err)
		}

		if err := b.AddLanguage(lang, translations); err != nil {
			return nil, err
		}
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// AddLanguage adds or extends the translations of lang
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.translations[lang]
	if !ok {
		existing = make(map[string]string, len(translations))
		b.translations[lang] = existing
	}

	for key, msg := range translations {
		if err := b.catalog.SetString(lang, key, msg); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
		existing[key] = msg
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.matcher = language.NewMatcher(b.languagesLocked())

	return nil
}

// SetDefaultLanguage changes the language used by T. The language must have translations.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.translations[lang]; !ok {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang
	b.matcher = language.NewMatcher(b.languagesLocked())

	return nil
}

// GetDefaultLanguage returns the language used by T
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// Languages returns the languages held by the bundle, default language first
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.languagesLocked()
}

func (b *Bundle) languagesLocked() []language.Tag {
	tags := make([]language.Tag, 0, len(b.translations))
	for tag := range b.translations {
		if tag != b.defaultLang {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})
	if _, ok := b.translations[b.defaultLang]; ok {
		tags = append([]language.Tag{b.defaultLang}, tags...)
	}

	return tags
}

// Match returns the closest language held by the bundle. When nothing matches with at least
// low confidence the default language is returned.
func (b *Bundle) Match(lang language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.matchLocked(lang)
}

func (b *Bundle) matchLocked(lang language.Tag) language.Tag {
	if _, ok := b.translations[lang]; ok {
		return lang
	}

	supported := b.languagesLocked()
	_, index, confidence := b.matcher.Match(lang)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return b.defaultLang
	}

	return supported[index]
}

// Lookup returns the raw (unformatted) message of key in lang, falling back to the
// default language and then to English
func (b *Bundle) Lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, candidate := range []language.Tag{b.matchLocked(lang), b.defaultLang, language.English} {
		if msg, ok := b.translations[candidate][key]; ok {
			return msg, true
		}
	}

	return "", false
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key. Unknown keys are returned as-is.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, candidate := range []language.Tag{b.matchLocked(lang), b.defaultLang, language.English} {
		if _, ok := b.translations[candidate][key]; !ok {
			continue
		}
		if p, ok := b.printers[candidate]; ok {
			return p.Sprintf(key, args...)
		}
	}

	return key
}
