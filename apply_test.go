package conf_test

import (
	"testing"
	"time"

	conf "github.com/0xalexb/kalla-conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCoercions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		apply    conf.Apply
		value    any
		expected any
	}{
		{name: "string passthrough", apply: conf.String, value: "hi", expected: "hi"},
		{name: "string from bytes", apply: conf.String, value: []byte("hi"), expected: "hi"},
		{name: "int passthrough", apply: conf.Int, value: 42, expected: 42},
		{name: "int from int64", apply: conf.Int, value: int64(42), expected: 42},
		{name: "int from uint64", apply: conf.Int, value: uint64(42), expected: 42},
		{name: "int from whole float", apply: conf.Int, value: 42.0, expected: 42},
		{name: "int from string", apply: conf.Int, value: "42", expected: 42},
		{name: "float from int", apply: conf.Float, value: 2, expected: 2.0},
		{name: "float from string", apply: conf.Float, value: "2.5", expected: 2.5},
		{name: "bool passthrough", apply: conf.Bool, value: true, expected: true},
		{name: "bool from string", apply: conf.Bool, value: "true", expected: true},
		{name: "duration passthrough", apply: conf.Duration, value: time.Second, expected: time.Second},
		{name: "duration from string", apply: conf.Duration, value: "1h30m", expected: 90 * time.Minute},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := testCase.apply(testCase.value)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, value)
		})
	}
}

func TestApplyCoercions_Reject(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		apply conf.Apply
		value any
	}{
		{name: "string from int", apply: conf.String, value: 42},
		{name: "int from fractional float", apply: conf.Int, value: 42.5},
		{name: "int from word", apply: conf.Int, value: "forty-two"},
		{name: "float from word", apply: conf.Float, value: "fast"},
		{name: "bool from word", apply: conf.Bool, value: "maybe"},
		{name: "duration from number", apply: conf.Duration, value: 90},
		{name: "duration from word", apply: conf.Duration, value: "soon"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := testCase.apply(testCase.value)

			require.Error(t, err)
		})
	}
}
