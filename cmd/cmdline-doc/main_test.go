package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gitSchema = "../../schema/testdata/git.yaml"

func runTool(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runTool("version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cmdline-doc dev\n", stdout)
}

func TestRun_NoArguments(t *testing.T) {
	code, stdout, stderr := runTool()
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage: cmdline-doc")
	assert.Contains(t, stderr, ` + readme "print a readme for the schema"`)
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing schema", []string{"readme"}, "required option --schema (-s) is missing"},
		{"unknown subcommand", []string{"publish"}, `expected end of input, but got "publish"`},
		{"bad language", []string{"usage", "-s", gitSchema, "--lang", "not a tag"}, `invalid value "not a tag" for option --lang (-l)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runTool(tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, "Error: "+tt.want)
		})
	}
}

func TestRun_Readme(t *testing.T) {
	code, stdout, stderr := runTool("readme", "--schema", gitSchema)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "# API Git helpers\n")
	assert.Contains(t, stdout, "  $ api-git merge\n")
	assert.Contains(t, stdout, "      --from-step FROM_STEP\n")
}

func TestRun_UsageGerman(t *testing.T) {
	code, stdout, stderr := runTool("usage", "-s", gitSchema, "-l", "de")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, ` + merge "Make new branch from master"`)
	assert.Contains(t, stdout, `--branch oder -b "Name of branch to merge into" (erforderlich)`)
}

func TestRun_Check(t *testing.T) {
	code, stdout, stderr := runTool("check", "-s", gitSchema, "--line", "merge -nq -b 'release branch' --from-step 2")
	require.Equal(t, 0, code, stderr)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "merge", got["subcommand"])
	assert.Equal(t, map[string]any{"branch": "release branch", "from-step": float64(2), "env": "staging"}, got["options"])
	assert.Equal(t, []any{"dry-run", "quiet"}, got["switches"])
}

func TestRun_CheckFailure(t *testing.T) {
	code, stdout, stderr := runTool("check", "-s", gitSchema, "--line", "merge -b dev extra")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Error: expected end of input, but got "extra"`)
}

func TestRun_Verbose(t *testing.T) {
	code, _, stderr := runTool("check", "-v", "-s", gitSchema, "--line", "version")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "loading schema")
	assert.Contains(t, stderr, "subcommand matched")

	code, _, stderr = runTool("check", "-s", gitSchema, "--line", "version")
	require.Equal(t, 0, code)
	assert.NotContains(t, stderr, "subcommand matched")
}

func TestRun_Completion(t *testing.T) {
	code, stdout, stderr := runTool("completion", "-s", gitSchema, "--shell", "fish")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "complete -c api-git -n '__fish_use_subcommand' -a 'merge'")

	code, stdout, _ = runTool("completion", "-s", gitSchema)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "complete -F _api_git_completion api-git")

	code, _, stderr = runTool("completion", "-s", gitSchema, "--shell", "tcsh")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `"tcsh" is not one of: bash, zsh, fish`)
}

func TestRun_MissingSchemaFile(t *testing.T) {
	code, _, stderr := runTool("readme", "-s", "missing.toml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: ")
}
