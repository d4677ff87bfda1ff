// Package schema loads parser definitions from YAML or TOML files.
//
// A schema document looks like this in YAML:
//
//	title: API Git helpers
//	script: api-git
//	subcommands:
//	  - name: merge
//	    description: Make new branch from master
//	    options:
//	      - key: branch
//	        short: b
//	      - key: from-step
//	        transform: int
//	        default: 0
//	    switches:
//	      - key: dry-run
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/errs"
)

// Format is the encoding of a schema document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is the file representation of a parser and its readme prose
type Document struct {
	Title       string       `yaml:"title" toml:"title"`
	Description string       `yaml:"description" toml:"description"`
	Script      string       `yaml:"script" toml:"script"`
	Subcommands []Subcommand `yaml:"subcommands" toml:"subcommands"`
}

type Subcommand struct {
	Name        string   `yaml:"name" toml:"name"`
	Description string   `yaml:"description" toml:"description"`
	Options     []Option `yaml:"options" toml:"options"`
	Switches    []Switch `yaml:"switches" toml:"switches"`
}

type Option struct {
	Key         string `yaml:"key" toml:"key"`
	Short       string `yaml:"short" toml:"short"`
	Default     any    `yaml:"default" toml:"default"`
	Multiple    bool   `yaml:"multiple" toml:"multiple"`
	Transform   string `yaml:"transform" toml:"transform"`
	Label       string `yaml:"label" toml:"label"`
	Description string `yaml:"description" toml:"description"`
}

type Switch struct {
	Key         string `yaml:"key" toml:"key"`
	Short       string `yaml:"short" toml:"short"`
	Description string `yaml:"description" toml:"description"`
}

// FormatFromPath determines the format of a schema file from its extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errs.ErrUnsupportedFormat.WithArgs(ext)
	}
}

// Load reads and decodes the schema file at path
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, format)
}

// Parse decodes a schema document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errs.ErrSchemaDecode.WithArgs(string(format)).Wrap(err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, errs.ErrSchemaDecode.WithArgs(string(format)).Wrap(err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errs.ErrSchemaDecode.WithArgs(string(format)).Wrap(&unknownFieldsError{keys: undecoded})
		}
	default:
		return nil, errs.ErrUnsupportedFormat.WithArgs(string(format))
	}

	return doc, nil
}

type unknownFieldsError struct {
	keys []toml.Key
}

func (e *unknownFieldsError) Error() string {
	names := make([]string, len(e.keys))
	for i, k := range e.keys {
		names[i] = k.String()
	}

	return "unknown fields: " + strings.Join(names, ", ")
}

// Parser builds a parser from the document. configs are applied to the parser before the
// subcommands are added.
func (d *Document) Parser(configs ...cmdline.ConfigureParserFunc) (*cmdline.Parser, error) {
	b := cmdline.NewBuilder().WithParserConfig(configs...)

	for _, s := range d.Subcommands {
		b.AddSubcommand(s.Name, cmdline.WithSubcommandDescription(s.Description))

		for _, o := range s.Options {
			optionConfigs, err := o.configs()
			if err != nil {
				return nil, err
			}
			b.AddOption(o.Key, optionConfigs...)
		}

		for _, sw := range s.Switches {
			b.AddSwitch(sw.Key,
				cmdline.WithSwitchShortKey(sw.Short),
				cmdline.WithSwitchDescription(sw.Description))
		}
	}

	return b.Build()
}

// Readme returns a readme provider taking its prose from the document and parser
func (d *Document) Readme(parser *cmdline.Parser) cmdline.ReadmeProvider {
	return cmdline.NewDefinitionProvider(d.Title, d.Description, d.Script, parser)
}

func (o Option) configs() ([]cmdline.ConfigureOptionFunc, error) {
	configs := []cmdline.ConfigureOptionFunc{
		cmdline.WithShortKey(o.Short),
		cmdline.WithDescription(o.Description),
		cmdline.WithLabel(o.Label),
		cmdline.SetMultiple(o.Multiple),
	}

	if o.Transform != "" {
		transform, err := ByName(o.Transform)
		if err != nil {
			return nil, err
		}
		configs = append(configs, transform)
	}

	if o.Default == nil {
		return configs, nil
	}

	value, err := o.defaultValue(cmdline.NewOption(o.Key, configs...))
	if err != nil {
		return nil, errs.ErrInvalidDefault.WithArgs(o.Key).Wrap(err)
	}

	return append(configs, cmdline.WithDefault(value)), nil
}

// defaultValue converts the decoded default like a value given on the command line, so the
// stored type is the same whether the flag is present or not
func (o Option) defaultValue(option *cmdline.Option) (any, error) {
	var items []any
	switch d := o.Default.(type) {
	case []any:
		items = d
	case map[string]any:
		return nil, errs.ErrDefaultNotScalar
	default:
		items = []any{d}
	}

	raw := make([]string, len(items))
	for i, item := range items {
		if !isScalar(item) {
			return nil, errs.ErrDefaultNotScalar
		}
		raw[i] = fmt.Sprint(item)
	}

	if option.Multiple {
		return option.ConvertValues(raw)
	}
	if len(raw) != 1 {
		return nil, errs.ErrDefaultNotScalar
	}

	return option.ConvertValue(raw[0])
}

func isScalar(value any) bool {
	switch value.(type) {
	case []any, map[string]any:
		return false
	}

	return true
}
