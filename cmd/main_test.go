package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	in := strings.NewReader(`
# build a small set
insert 5
insert 1
insert 8
insert 3
values
shift 3 10
values
erase 13
find 13
find 15
values
`)
	var out bytes.Buffer
	require.NoError(t, runScript(in, &out))

	want := `values: [1 3 5 8]
values: [1 13 15 18]
find 13: false
find 15: true
values: [1 15 18]
`
	assert.Equal(t, want, out.String())
}

func TestRunScriptEmptyValues(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScript(strings.NewReader("values\n"), &out))
	assert.Equal(t, "values: []\n", out.String())
}

func TestRunScriptIgnoresDuplicates(t *testing.T) {
	in := strings.NewReader("insert 4\ninsert 4\nerase 9\nvalues\n")
	var out bytes.Buffer
	require.NoError(t, runScript(in, &out))
	assert.Equal(t, "values: [4]\n", out.String())
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown op", "frobnicate 1", `line 1: unknown operation "frobnicate"`},
		{"bad value", "insert ten", `line 1: bad value "ten"`},
		{"missing value", "find", "line 1: find takes exactly one value"},
		{"extra value", "erase 1 2", "line 1: erase takes exactly one value"},
		{"shift arity", "# setup\nshift 5", "line 2: shift takes a pivot and a delta"},
		{"bad pivot", "shift p 1", `line 1: bad pivot "p"`},
		{"bad delta", "shift 5 d", `line 1: bad delta "d"`},
		{"negative delta", "shift 5 -1", "line 1: delta must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runScript(strings.NewReader(tt.script), io.Discard)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
