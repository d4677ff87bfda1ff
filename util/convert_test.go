package util

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/napalu/cmdline/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericTransforms(t *testing.T) {
	i, err := Int("10")
	require.NoError(t, err)
	assert.Equal(t, 10, i)

	i64, err := Int64("-9000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), i64)

	u, err := Uint("7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), u)

	f, err := Float64("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = Int("ten")
	assert.ErrorIs(t, err, errs.ErrParseInt)
	assert.EqualError(t, err, `cannot parse "ten" as an integer`)

	_, err = Int64("1.5")
	assert.ErrorIs(t, err, errs.ErrParseInt)

	_, err = Uint("-1")
	assert.ErrorIs(t, err, errs.ErrParseUint)

	_, err = Float64("x")
	assert.ErrorIs(t, err, errs.ErrParseFloat)
}

func TestBool(t *testing.T) {
	for _, v := range []string{"true", "1", "T"} {
		b, err := Bool(v)
		require.NoError(t, err)
		assert.True(t, b, v)
	}

	_, err := Bool("yes please")
	assert.ErrorIs(t, err, errs.ErrParseBool)
}

func TestDuration(t *testing.T) {
	d, err := Duration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = Duration("soon")
	assert.ErrorIs(t, err, errs.ErrParseDuration)
}

func TestTime(t *testing.T) {
	tm, err := Time("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, tm.Year())
	assert.Equal(t, time.March, tm.Month())
	assert.Equal(t, 1, tm.Day())

	tm, err = Time("March 7, 2023")
	require.NoError(t, err)
	assert.Equal(t, 7, tm.Day())

	_, err = Time("not a date")
	assert.ErrorIs(t, err, errs.ErrParseTime)
}

func TestUUID(t *testing.T) {
	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	id, err := UUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, want, id)

	_, err = UUID("6ba7b810")
	assert.ErrorIs(t, err, errs.ErrParseUUID)
}

func TestVersion(t *testing.T) {
	v, err := Version("v1.4")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v.String())
	assert.Equal(t, uint64(4), v.Minor())

	_, err = Version("one.two")
	assert.ErrorIs(t, err, errs.ErrParseVersion)
	assert.Equal(t, `cannot parse "one.two" as a semantic version`, err.Error())
}

func TestStringTransforms(t *testing.T) {
	s, _ := String("As Is")
	assert.Equal(t, "As Is", s)

	s, _ = Upper("master")
	assert.Equal(t, "MASTER", s)

	s, _ = Lower("MASTER")
	assert.Equal(t, "master", s)

	s, _ = KebabCase("ReleaseBranch")
	assert.Equal(t, "release-branch", s)
}

func TestOneOf(t *testing.T) {
	env := OneOf("staging", "production")

	v, err := env("staging")
	require.NoError(t, err)
	assert.Equal(t, "staging", v)

	_, err = env("qa")
	assert.ErrorIs(t, err, errs.ErrNotOneOf)
	assert.EqualError(t, err, `"qa" is not one of: staging, production`)
}
