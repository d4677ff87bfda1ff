package cmdline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/cmdline/errs"
)

func TestResult_SetOptionLastWriteWins(t *testing.T) {
	r := NewResult()
	r.SetOption("branch", "dev")
	r.SetOption("branch", "main")

	value, ok := r.Option("branch")
	assert.True(t, ok)
	assert.Equal(t, "main", value)
	assert.Len(t, r.Options(), 1)
}

func TestResult_SetSwitchIdempotent(t *testing.T) {
	r := NewResult()
	r.SetSwitch("dry-run")
	r.SetSwitch("dry-run")
	r.SetSwitch("all")

	assert.Equal(t, []string{"all", "dry-run"}, r.Switches())
	assert.True(t, r.Switch("dry-run"))
	assert.False(t, r.Switch("quiet"))
}

func TestResult_OptionsIsACopy(t *testing.T) {
	r := NewResult()
	r.SetOption("branch", "dev")

	options := r.Options()
	options["branch"] = "changed"
	options["other"] = 1

	value, _ := r.Option("branch")
	assert.Equal(t, "dev", value)
	assert.False(t, r.HasOption("other"))
}

func TestGet(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	r := NewResult()
	r.SetOption("step", 10)
	r.SetOption("id", id)
	r.SetOption("timeout", 5*time.Second)

	step, err := Get[int](r, "step")
	require.NoError(t, err)
	assert.Equal(t, 10, step)

	got, err := Get[uuid.UUID](r, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	timeout, err := Get[time.Duration](r, "timeout")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)

	_, err = Get[int](r, "missing")
	assert.ErrorIs(t, err, errs.ErrOptionNotSet)
	assert.Equal(t, `option "missing" is not set`, err.Error())

	_, err = Get[string](r, "step")
	assert.ErrorIs(t, err, errs.ErrUnsupportedConversion)
	assert.Equal(t, `option "step" holds a int which is not a string`, err.Error())
}

func TestResult_GetString(t *testing.T) {
	r := NewResult()
	r.SetOption("branch", "dev")
	r.SetOption("step", 3)

	branch, err := r.GetString("branch")
	require.NoError(t, err)
	assert.Equal(t, "dev", branch)

	step, err := r.GetString("step")
	require.NoError(t, err)
	assert.Equal(t, "3", step)

	_, err = r.GetString("missing")
	assert.ErrorIs(t, err, errs.ErrOptionNotSet)
}

func TestResult_GetStrings(t *testing.T) {
	r := NewResult()
	r.SetOption("files", []string{"a", "b"})
	r.SetOption("single", "c")
	r.SetOption("mixed", []any{1, "x"})
	r.SetOption("number", 3)

	tests := []struct {
		key     string
		want    []string
		wantErr error
	}{
		{"files", []string{"a", "b"}, nil},
		{"single", []string{"c"}, nil},
		{"mixed", []string{"1", "x"}, nil},
		{"number", nil, errs.ErrUnsupportedConversion},
		{"missing", nil, errs.ErrOptionNotSet},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := r.GetStrings(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	files, _ := r.GetStrings("files")
	files[0] = "changed"
	again, _ := r.GetStrings("files")
	assert.Equal(t, "a", again[0], "the stored slice is not exposed")
}

func TestResult_MarshalJSON(t *testing.T) {
	r := NewResult()
	r.SetSubcommand("merge")
	r.SetOption("branch", "dev")
	r.SetOption("from-step", 10)
	r.SetOption("files", []string{"a", "b"})
	r.SetSwitch("quiet")
	r.SetSwitch("dry-run")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"subcommand": "merge",
		"options": {"branch": "dev", "from-step": 10, "files": ["a", "b"]},
		"switches": ["dry-run", "quiet"]
	}`, string(data))
	assert.Regexp(t, `"branch".*"from-step".*"files"`, string(data), "options keep their order")

	data, err = json.Marshal(NewResult())
	require.NoError(t, err)
	assert.JSONEq(t, `{"subcommand": "", "options": {}, "switches": []}`, string(data))
}
