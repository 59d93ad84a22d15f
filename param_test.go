package conf

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParam_ResolveFirstAcrossGetters(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("cli", Static(map[string]any{"<name>": "Sir Robin"})),
		New("file", Static(map[string]any{"greeting": "Run away"})),
	}

	param := NewParam("Greeting",
		WithGetters(
			Key(ByKind("cli"), "-g"),
			Key(ByKind("file"), "greeting"),
		),
		WithDefault("Hello"),
	)

	value, err := param.resolve(configs)

	require.NoError(t, err)
	assert.Equal(t, "Run away", value)
}

func TestParam_DefaultFallthrough(t *testing.T) {
	t.Parallel()

	param := NewParam("Greeting",
		WithGetters(Key(ByKind("cli"), "-g")),
		WithDefault("Hello"),
	)

	value, err := param.resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, "Hello", value)
}

func TestParam_NoValueNamesParameter(t *testing.T) {
	t.Parallel()

	param := NewParam("Greeting", WithGetters(Key(ByKind("cli"), "-g")))

	_, err := param.resolve(nil)

	require.ErrorIs(t, err, ErrNoValueFound)
	require.ErrorContains(t, err, `parameter "Greeting"`)
}

func TestParam_NoGettersNoDefault(t *testing.T) {
	t.Parallel()

	param := NewParam("Greeting")

	_, err := param.resolve(nil)

	require.ErrorIs(t, err, ErrNoValueFound)
}

func TestParam_ApplyTransformsEveryValue(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("map", Static(map[string]any{"x": "hello"})),
	}

	param := NewParam("X",
		WithGetters(Key(ByKind("map"), "x")),
		WithApply(func(value any) (any, error) {
			return strings.ToUpper(value.(string)), nil
		}),
	)

	value, err := param.resolve(configs)

	require.NoError(t, err)
	assert.Equal(t, "HELLO", value)
}

func TestParam_ApplyAppliesToDefault(t *testing.T) {
	t.Parallel()

	param := NewParam("Port",
		WithDefault("8080"),
		WithApply(Int),
	)

	value, err := param.resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, 8080, value)
}

func TestParam_GetterApplyOverridesParamApply(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("map", Static(map[string]any{"x": "value"})),
	}

	param := NewParam("X",
		WithGetters(Key(ByKind("map"), "x", KeyApply(func(any) (any, error) {
			return "from getter", nil
		}))),
		WithApply(func(any) (any, error) {
			return "from param", nil
		}),
	)

	value, err := param.resolve(configs)

	require.NoError(t, err)
	assert.Equal(t, "from getter", value)
}

func TestParam_ApplyErrorCarriesOrigin(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("file", Static(map[string]any{"port": "not a number"}), WithName("app.yaml")),
	}

	param := NewParam("Port",
		WithGetters(Key(ByKind("file"), "port")),
		WithApply(Int),
	)

	_, err := param.resolve(configs)

	require.ErrorIs(t, err, ErrApply)
	require.ErrorContains(t, err, `parameter "Port"`)
	require.ErrorContains(t, err, `file config "app.yaml", key "port"`)
	require.NotErrorIs(t, err, ErrNoValueFound, "a malformed value must not be treated as absent")
}

func TestParam_ApplyErrorAbortsBeforeLaterGetters(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("map", Static(map[string]any{"x": "bad"})),
	}

	param := NewParam("X",
		WithGetters(Key(ByKind("map"), "x")),
		WithDefault("good"),
		WithApply(func(value any) (any, error) {
			if value == "bad" {
				return nil, errors.New("rejected")
			}

			return value, nil
		}),
	)

	_, err := param.resolve(configs)

	require.ErrorIs(t, err, ErrApply)
}

func TestParam_PickAllCollectsGetterThenConfigOrder(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("a", Static(map[string]any{"x": 1})),
		New("b", Static(map[string]any{"x": 2})),
		New("a", Static(map[string]any{"x": 3})),
	}

	param := NewParam("X",
		WithGetters(
			Key(ByKind("b"), "x"),
			Key(ByKind("a"), "x"),
		),
		WithPick(All),
	)

	value, err := param.resolve(configs)

	require.NoError(t, err)
	assert.Equal(t, []any{2, 1, 3}, value,
		"declared getter order first, then config priority order within each getter")
}

func TestParam_ConfigLoadErrorNotAttributed(t *testing.T) {
	t.Parallel()

	configs := []*Config{
		New("map", SourceFunc(func() (any, error) {
			return nil, errors.New("malformed")
		})),
	}

	param := NewParam("X", WithGetters(Key(ByKind("map"), "x")))

	_, err := param.resolve(configs)

	require.ErrorIs(t, err, ErrConfigLoad)
	require.NotContains(t, err.Error(), `parameter "X"`,
		"a config load failure is not a per-parameter condition")
}

func TestParam_LazyResolution(t *testing.T) {
	t.Parallel()

	unused := &countingParamSource{err: errors.New("malformed")}
	configs := []*Config{
		New("cli", Static(map[string]any{"x": "found"})),
		New("file", unused),
	}

	param := NewParam("X",
		WithGetters(
			Key(ByKind("cli"), "x"),
			Key(ByKind("file"), "x"),
		),
	)

	value, err := param.resolve(configs)

	require.NoError(t, err)
	assert.Equal(t, "found", value)
	assert.Zero(t, unused.loads, "First must not materialize configs past the first find")
}

type countingParamSource struct {
	value any
	err   error
	loads int
}

func (s *countingParamSource) Load() (any, error) {
	s.loads++

	return s.value, s.err
}
