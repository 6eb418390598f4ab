package textlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nobletooth/dlist/pkg/list"
	"github.com/nobletooth/dlist/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLoad loads the given text into a list.
func mustLoad(t *testing.T, text string) *list.LinkedList[string] {
	t.Helper()
	lines, err := Load(strings.NewReader(text))
	require.NoError(t, err)
	return lines
}

func TestLoad(t *testing.T) {
	lines := mustLoad(t, "b\n\n  a  \t\r\nc")
	assert.Equal(t, []string{"b", "  a", "c"}, lines.ToSlice())
	assert.True(t, mustLoad(t, "").IsEmpty())
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	first, second := filepath.Join(dir, "first.txt"), filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("3\n1\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("2\n"), 0o644))

	inputs, err := LoadFiles([]string{first, second}, strings.NewReader("ignored"))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "[3, 1]", inputs[0].String())
	assert.Equal(t, "[2]", inputs[1].String())

	inputs, err = LoadFiles(nil, strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "[x, y]", inputs[0].String())

	_, err = LoadFiles([]string{filepath.Join(dir, "missing.txt")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompare(t *testing.T) {
	lexical := Compare(Options{})
	assert.Negative(t, lexical("10", "9"))

	numeric := Compare(Options{Numeric: true})
	assert.Positive(t, numeric("10", "9"))
	assert.Zero(t, numeric("1", "1.0"))
	assert.Negative(t, numeric("100", "abc"), "Numbers sort before other lines")
	assert.Positive(t, numeric("abc", "100"))
	assert.Negative(t, numeric("abc", "abd"))

	descending := Compare(Options{Numeric: true, Descending: true})
	assert.Negative(t, descending("10", "9"))
}

func TestRun(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		opts     Options
		inputs   []string
		expected string
	}{
		{name: "Concatenate", opts: Options{}, inputs: []string{"3\n1", "2"}, expected: "[3, 1, 2]"},
		{name: "Sort", opts: Options{Sort: true}, inputs: []string{"3\n1\n2"}, expected: "[1, 2, 3]"},
		{name: "Sort and merge", opts: Options{Sort: true}, inputs: []string{"c\na", "d\nb"}, expected: "[a, b, c, d]"},
		{name: "Numeric", opts: Options{Sort: true, Numeric: true}, inputs: []string{"10\n9\nx\n-1"},
			expected: "[-1, 9, 10, x]"},
		{name: "Descending", opts: Options{Sort: true, Descending: true}, inputs: []string{"a\nc", "b"},
			expected: "[c, b, a]"},
		{name: "Reverse", opts: Options{Reverse: true}, inputs: []string{"a\nc", "b"}, expected: "[b, c, a]"},
		{name: "Filter", opts: Options{Filter: "key*"}, inputs: []string{"key1\nother\nkey2"}, expected: "[key1, key2]"},
		{name: "Unique", opts: Options{Unique: true}, inputs: []string{"a\nb\na", "b\nc"}, expected: "[a, b, c]"},
		{name: "Everything", opts: Options{Filter: "?", Sort: true, Unique: true, Reverse: true},
			inputs: []string{"b\naa\na", "c\nb"}, expected: "[c, b, a]"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			inputs := make([]*list.LinkedList[string], 0, len(testCase.inputs))
			for _, text := range testCase.inputs {
				inputs = append(inputs, mustLoad(t, text))
			}
			snapshots := make([]string, 0, len(inputs))
			for _, input := range inputs {
				snapshots = append(snapshots, input.String())
			}

			result, err := Run(testCase.opts, inputs)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result.List.String())
			assert.False(t, result.Searched)

			for i, input := range inputs { // Inputs must be left untouched.
				assert.Equal(t, snapshots[i], input.String())
			}
		})
	}
}

func TestRun_Search(t *testing.T) {
	inputs := []*list.LinkedList[string]{mustLoad(t, "5\n3\n9"), mustLoad(t, "1")}
	for _, testCase := range []struct {
		name   string
		opts   Options
		search string
		found  bool
	}{
		{name: "Unsorted found", opts: Options{}, search: "9", found: true},
		{name: "Unsorted missing", opts: Options{}, search: "4", found: false},
		{name: "Sorted found", opts: Options{Sort: true, Numeric: true}, search: "5", found: true},
		{name: "Sorted missing", opts: Options{Sort: true, Numeric: true}, search: "4", found: false},
		{name: "Sorted reversed found", opts: Options{Sort: true, Numeric: true, Reverse: true}, search: "3",
			found: true},
		{name: "Sorted descending found", opts: Options{Sort: true, Descending: true}, search: "1", found: true},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			opts := testCase.opts
			opts.Search = testCase.search
			result, err := Run(opts, inputs)
			require.NoError(t, err)
			assert.True(t, result.Searched)
			assert.Equal(t, testCase.found, result.Found)
			assert.Equal(t, result.List.Contains(testCase.search), result.Found)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(Options{}, nil)
	assert.Error(t, err)
}

func TestOptionsFromFlags(t *testing.T) {
	utils.SetTestFlag(t, "filter", "a*")
	utils.SetTestFlag(t, "sort", "true")
	utils.SetTestFlag(t, "numeric", "true")
	utils.SetTestFlag(t, "descending", "true")
	utils.SetTestFlag(t, "reverse", "true")
	utils.SetTestFlag(t, "unique", "true")
	utils.SetTestFlag(t, "search", "abc")

	assert.Equal(t, Options{
		Filter: "a*", Sort: true, Numeric: true, Descending: true, Reverse: true, Unique: true, Search: "abc",
	}, OptionsFromFlags())
}
