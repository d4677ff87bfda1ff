package cmdline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
)

func TestWithLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang language.Tag
		want language.Tag
	}{
		{"german", language.German, language.German},
		{"regional variant matches base", language.MustParse("de-CH"), language.German},
		{"unknown falls back to default", language.Japanese, language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := NewParserWith(WithLanguage(tt.lang))
			require.NoError(t, err)
			assert.Equal(t, tt.want, parser.Language())
		})
	}
}

func TestWithBundle(t *testing.T) {
	bundle := i18n.NewEmptyBundle()
	require.NoError(t, bundle.AddLanguage(language.English, map[string]string{
		"cmdline.error.required_option": "you forgot %s",
	}))
	require.NoError(t, bundle.AddLanguage(language.French, map[string]string{
		"cmdline.error.required_option": "vous avez oublié %s",
	}))

	parser, err := NewParserWith(
		WithBundle(bundle),
		WithLanguage(language.French),
		WithSubcommand(NewSubcommand("merge", WithOptions(NewOption("branch")))))
	require.NoError(t, err)
	assert.Same(t, bundle, parser.Bundle())

	_, err = parser.Parse([]string{"merge"})
	assert.Equal(t, "vous avez oublié --branch", err.Error())

	_, err = parser.Parse([]string{"merge", "--branch", "x", "y"})
	assert.True(t, strings.HasPrefix(err.Error(), "cmdline.error.unexpected_input"), "keys unknown to the bundle are printed as-is")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	parser, err := NewParserWith(
		WithLogger(logger),
		WithSubcommand(NewSubcommand("merge",
			WithOptions(NewOption("into", WithDefault("master"))),
			WithSwitches(NewSwitch("foo", WithSwitchShortKey("f")), NewSwitch("bar", WithSwitchShortKey("b"))))))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"merge", "-fb"})
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "expanded flag clusters")
	assert.Contains(t, logged, "subcommand matched")
	assert.Contains(t, logged, "option default applied")
	assert.Contains(t, logged, "switch consumed")
}

func TestWithProgramNameAndRenderer(t *testing.T) {
	parser, err := NewParserWith(
		WithProgramName("tool"),
		WithSubcommand(NewSubcommand("merge")))
	require.NoError(t, err)
	custom := upperRenderer{NewRenderer(parser)}
	require.NoError(t, applyConfig(parser, WithRenderer(custom)))
	assert.Equal(t, custom, parser.Renderer())

	var buf bytes.Buffer
	parser.PrintUsage(&buf)
	assert.Equal(t, "usage: tool\n\n + MERGE\n", buf.String())
}

func applyConfig(parser *Parser, config ConfigureParserFunc) error {
	var err error
	config(parser, &err)

	return err
}

func TestParserConfig_NilValues(t *testing.T) {
	tests := []struct {
		name   string
		config ConfigureParserFunc
		want   string
	}{
		{"logger", WithLogger(nil), "logger"},
		{"bundle", WithBundle(nil), "bundle"},
		{"renderer", WithRenderer(nil), "renderer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := NewParserWith(tt.config)
			assert.Nil(t, parser)
			assert.ErrorIs(t, err, errs.ErrNilDefinition)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWithTerminal(t *testing.T) {
	parser, err := NewParserWith(
		WithTerminal(fixedTerminal{width: 30}),
		WithSubcommand(NewSubcommand("merge", WithOptions(
			NewOption("branch", WithDescription("the name of the branch to merge into the target"))))))
	require.NoError(t, err)

	var buf terminalBuffer
	parser.PrintUsage(&buf)
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 30, line)
	}
}

func TestOptionConfig(t *testing.T) {
	o := NewOption("branch",
		WithShortKey("b"),
		WithDescription("branch to merge"),
		WithLabel("BRANCH"),
		WithDefault("master"),
		SetMultiple(true))

	assert.Equal(t, "b", o.ShortKey)
	assert.Equal(t, "branch to merge", o.Description)
	assert.Equal(t, "BRANCH", o.Label)
	assert.True(t, o.Multiple)
	value, ok := o.Default()
	assert.True(t, ok)
	assert.Equal(t, "master", value)
	assert.False(t, o.Required())

	o.Set(WithoutDefault())
	_, ok = o.Default()
	assert.False(t, ok)
	assert.True(t, o.Required())
}

func TestWithTransformFunc(t *testing.T) {
	parser, err := NewParserWith(WithSubcommand(NewSubcommand("merge", WithOptions(
		NewOption("steps", SetMultiple(true), WithTransformFunc(func(value string) (any, error) {
			return len(value), nil
		}))))))
	require.NoError(t, err)

	result, err := parser.Parse([]string{"merge", "--steps", "a", "bb"})
	require.NoError(t, err)
	steps, err := Get[[]any](result, "steps")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, steps)
}

func TestSubcommandLookup(t *testing.T) {
	s := NewSubcommand("merge",
		WithSubcommandDescription("merge things"),
		WithOptions(NewOption("branch")),
		WithSwitches(NewSwitch("dry-run", WithSwitchDescription("do nothing"))))
	s.Set(WithOptions(NewOption("into")))

	assert.Equal(t, "merge things", s.Description)
	_, ok := s.Option("into")
	assert.True(t, ok)
	_, ok = s.Option("dry-run")
	assert.False(t, ok)
	sw, ok := s.Switch("dry-run")
	require.True(t, ok)
	assert.Equal(t, "do nothing", sw.Description)
}
