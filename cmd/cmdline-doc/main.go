// Command cmdline-doc renders documentation for parser definitions stored in YAML or TOML
// schema files and checks argument lines against them.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"golang.org/x/text/language"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/completion"
	"github.com/napalu/cmdline/schema"
	"github.com/napalu/cmdline/util"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newParser() (*cmdline.Parser, error) {
	schemaOption := func() *cmdline.Option {
		return cmdline.NewOption("schema",
			cmdline.WithShortKey("s"),
			cmdline.WithLabel("FILE"),
			cmdline.WithDescription("YAML or TOML schema file"))
	}
	langOption := func() *cmdline.Option {
		return cmdline.NewOption("lang",
			cmdline.WithShortKey("l"),
			cmdline.WithTransform(language.Parse),
			cmdline.WithDefault(language.English),
			cmdline.WithDescription("language of generated text"))
	}
	verbose := func() *cmdline.Switch {
		return cmdline.NewSwitch("verbose",
			cmdline.WithSwitchShortKey("v"),
			cmdline.WithSwitchDescription("log debug output to stderr"))
	}

	return cmdline.NewBuilder().
		AddSubcommand("readme", cmdline.WithSubcommandDescription("print a readme for the schema"),
			cmdline.WithOptions(schemaOption(), langOption()),
			cmdline.WithSwitches(verbose())).
		AddSubcommand("usage", cmdline.WithSubcommandDescription("print usage text for the schema"),
			cmdline.WithOptions(schemaOption(), langOption()),
			cmdline.WithSwitches(verbose())).
		AddSubcommand("check", cmdline.WithSubcommandDescription("parse an argument line against the schema and print the result as JSON"),
			cmdline.WithOptions(schemaOption(), langOption(),
				cmdline.NewOption("line", cmdline.WithDescription("quoted argument line"))),
			cmdline.WithSwitches(verbose())).
		AddSubcommand("completion", cmdline.WithSubcommandDescription("print a shell completion script for the schema"),
			cmdline.WithOptions(schemaOption(), langOption(),
				cmdline.NewOption("shell",
					cmdline.WithTransform(util.OneOf("bash", "zsh", "fish")),
					cmdline.WithDefault("bash"),
					cmdline.WithDescription("bash, zsh or fish"))),
			cmdline.WithSwitches(verbose())).
		AddSubcommand("version", cmdline.WithSubcommandDescription("print the version")).
		WithParserConfig(cmdline.WithProgramName("cmdline-doc")).
		Build()
}

func run(args []string, stdout, stderr io.Writer) int {
	errOut := color.New(color.FgRed)

	parser, err := newParser()
	if err != nil {
		_, _ = errOut.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	result, err := parser.Parse(args)
	if err != nil {
		_, _ = errOut.Fprintf(stderr, "Error: %v\n\n", err)
		parser.PrintUsage(stderr)
		return 2
	}

	if result.Subcommand() == "" {
		parser.PrintUsage(stderr)
		return 2
	}

	if result.Subcommand() == "version" {
		_, _ = fmt.Fprintln(stdout, "cmdline-doc", version)
		return 0
	}

	level := slog.LevelInfo
	if result.Switch("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(result, logger, stdout); err != nil {
		_, _ = errOut.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func execute(result *cmdline.Result, logger *slog.Logger, stdout io.Writer) error {
	path, err := result.GetString("schema")
	if err != nil {
		return err
	}
	lang, err := cmdline.Get[language.Tag](result, "lang")
	if err != nil {
		return err
	}

	logger.Debug("loading schema", "path", path, "lang", lang)
	doc, err := schema.Load(path)
	if err != nil {
		return err
	}

	target, err := doc.Parser(cmdline.WithLogger(logger), cmdline.WithLanguage(lang))
	if err != nil {
		return err
	}

	switch result.Subcommand() {
	case "readme":
		_, err = fmt.Fprintln(stdout, target.Readme(doc.Readme(target)))
	case "usage":
		target.PrintUsage(stdout)
	case "check":
		err = check(target, result, stdout)
	case "completion":
		err = printCompletion(target, doc, result, stdout)
	}

	return err
}

func check(target *cmdline.Parser, result *cmdline.Result, stdout io.Writer) error {
	line, err := result.GetString("line")
	if err != nil {
		return err
	}

	parsed, err := target.ParseString(line)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))

	return err
}

func printCompletion(target *cmdline.Parser, doc *schema.Document, result *cmdline.Result, stdout io.Writer) error {
	shell, err := result.GetString("shell")
	if err != nil {
		return err
	}

	programName := doc.Script
	if programName == "" {
		programName = "cmdline"
	}

	script, err := completion.Generate(shell, programName, target)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, script)

	return err
}
