package envutil

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amp-labs/amp-arrays/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("override wins", func(t *testing.T) {
		t.Parallel()

		ctx := WithEnvOverride(context.Background(), "ARRAYS_TEST_STRING", "hello")

		val, err := String(ctx, "ARRAYS_TEST_STRING").Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", val)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := String(context.Background(), "ARRAYS_TEST_DEFINITELY_UNSET").Value()
		require.ErrorIs(t, err, ErrEnvVarMissing)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		val, err := String(context.Background(), "ARRAYS_TEST_DEFINITELY_UNSET", Default("fallback")).Value()
		require.NoError(t, err)
		assert.Equal(t, "fallback", val)
	})

	t.Run("if missing", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("need it") //nolint:err113

		rdr := String(context.Background(), "ARRAYS_TEST_DEFINITELY_UNSET", IfMissing[string](sentinel))
		assert.True(t, rdr.HasError())
		assert.ErrorIs(t, rdr.Error(), sentinel)
	})
}

func TestProcessEnvironment(t *testing.T) { //nolint:paralleltest
	t.Setenv("ARRAYS_TEST_PROCESS", "from-env")

	val, err := String(context.Background(), "ARRAYS_TEST_PROCESS").Value()
	require.NoError(t, err)
	assert.Equal(t, "from-env", val)
}

func TestEnum(t *testing.T) {
	t.Parallel()

	choices := []string{"one", "double"}

	ctx := WithEnvOverride(context.Background(), "ARRAYS_TEST_GROWTH", "  Double ")

	val, err := Enum(ctx, "ARRAYS_TEST_GROWTH", choices).Value()
	require.NoError(t, err)
	assert.Equal(t, "double", val)

	ctx = WithEnvOverride(context.Background(), "ARRAYS_TEST_GROWTH", "triple")

	_, err = Enum(ctx, "ARRAYS_TEST_GROWTH", choices).Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
	require.ErrorIs(t, err, xform.ErrInvalidChoice)

	assert.Equal(t, "one", Enum(ctx, "ARRAYS_TEST_GROWTH", choices).ValueOrElse("one"))
}

func TestIntAndBool(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverrides(context.Background(), map[string]string{
		"ARRAYS_TEST_MAX": " 128 ",
		"ARRAYS_TEST_ON":  "true",
		"ARRAYS_TEST_BAD": "lots",
	})

	maxCap, err := Int[int](ctx, "ARRAYS_TEST_MAX").Value()
	require.NoError(t, err)
	assert.Equal(t, 128, maxCap)

	on, err := Bool(ctx, "ARRAYS_TEST_ON").Value()
	require.NoError(t, err)
	assert.True(t, on)

	_, err = Int[int](ctx, "ARRAYS_TEST_BAD").Value()
	require.ErrorIs(t, err, ErrBadEnvVar)

	_, err = Int[int](ctx, "ARRAYS_TEST_MAX", Validate(func(v int) error {
		_, err := xform.NonNegative(v - 1000)

		return err
	})).Value()
	require.ErrorIs(t, err, xform.ErrNegative)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverride(context.Background(), "LOG_LEVEL", "WARN")

	lvl, err := SlogLevel(ctx, "LOG_LEVEL").Value()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestReaderString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "K=v", NewReader("K", true, nil, "v").String())
	assert.Equal(t, "K=<not set>", NewReader("K", false, nil, "").String())
	assert.Contains(t, NewReader("K", true, xform.ErrNegative, 0).String(), "error")
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("dotenv", func(t *testing.T) {
		t.Parallel()

		path := write("arrays.env", "# comment\nARRAYSORT_ALGORITHM=insertion\nexport ARRAYSORT_GROWTH=\"one\"\n")

		env, err := LoadEnvFile(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"ARRAYSORT_ALGORITHM": "insertion",
			"ARRAYSORT_GROWTH":    "one",
		}, env)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := write("arrays.json", `{"env": {"ARRAYSORT_ELEMENT": "float"}}`)

		env, err := LoadEnvFile(path)
		require.NoError(t, err)
		assert.Equal(t, "float", env["ARRAYSORT_ELEMENT"])
	})

	t.Run("yaml feeds context overrides", func(t *testing.T) {
		t.Parallel()

		path := write("arrays.yaml", "env:\n  ARRAYSORT_MAX_CAPACITY: \"64\"\n")

		ctx, err := WithEnvFile(context.Background(), path)
		require.NoError(t, err)

		maxCap, err := Int[int](ctx, "ARRAYSORT_MAX_CAPACITY").Value()
		require.NoError(t, err)
		assert.Equal(t, 64, maxCap)
	})

	t.Run("unknown suffix", func(t *testing.T) {
		t.Parallel()

		path := write("arrays.toml", "x = 1")

		_, err := LoadEnvFile(path)
		require.ErrorIs(t, err, ErrUnknownFileType)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadEnvFile(filepath.Join(dir, "nope.env"))
		require.Error(t, err)
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverride(context.Background(), "ARRAYS_TEST_DURATION", " 250ms ")

	val, err := Duration(ctx, "ARRAYS_TEST_DURATION").Value()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, val)

	bad := WithEnvOverride(context.Background(), "ARRAYS_TEST_DURATION", "soon")
	_, err = Duration(bad, "ARRAYS_TEST_DURATION").Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
}
