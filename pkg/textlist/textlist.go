// Package textlist turns line-oriented text into lists and runs list operations over them.
//
// Each non-blank line of an input becomes one element. Inputs are filtered with a glob pattern, optionally
// merge sorted and merged together, deduplicated and reversed; the outcome is a single list.
package textlist

import (
	"bufio"
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nobletooth/dlist/pkg/list"
	"github.com/nobletooth/dlist/pkg/scan"
	"github.com/nobletooth/dlist/pkg/utils"
)

const maxLineBytes = 1 << 20 /*1 MiB*/

var (
	filterFlag     = flag.String("filter", "", "Keep only the lines matching this glob pattern.")
	sortFlag       = flag.Bool("sort", false, "Sort every input and merge them into one sorted list.")
	numericFlag    = flag.Bool("numeric", false, "Compare lines as numbers when both of them parse as one.")
	descendingFlag = flag.Bool("descending", false, "Sort in descending order.")
	reverseFlag    = flag.Bool("reverse", false, "Reverse the resulting list.")
	uniqueFlag     = flag.Bool("unique", false, "Drop repeated lines, keeping the first occurrence.")
	searchFlag     = flag.String("search", "", "Report whether this line is in the resulting list.")
)

// Options controls a Run.
type Options struct {
	Filter     string // Glob pattern lines must match; empty keeps every line.
	Sort       bool
	Numeric    bool
	Descending bool
	Reverse    bool
	Unique     bool
	Search     string // Line to look up in the result; empty skips the lookup.
}

// OptionsFromFlags builds the Options from the command line flags.
func OptionsFromFlags() Options {
	return Options{
		Filter:     *filterFlag,
		Sort:       *sortFlag,
		Numeric:    *numericFlag,
		Descending: *descendingFlag,
		Reverse:    *reverseFlag,
		Unique:     *uniqueFlag,
		Search:     *searchFlag,
	}
}

// Result is the outcome of a Run.
type Result struct {
	List     *list.LinkedList[string]
	Searched bool // True if Options.Search was set.
	Found    bool // Whether Options.Search is in List; only meaningful when Searched.
}

// Compare returns the line ordering implied by `opts`.
// With Numeric, lines parsing as numbers sort before other lines and compare by value among themselves.
func Compare(opts Options) utils.CompareFn[string] {
	compare := utils.CompareFn[string](strings.Compare)
	if opts.Numeric {
		compare = compareNumeric
	}
	if opts.Descending {
		compare = utils.Reverse(compare)
	}
	return compare
}

func compareNumeric(x, y string) int {
	xNum, xErr := strconv.ParseFloat(x, 64)
	yNum, yErr := strconv.ParseFloat(y, 64)
	switch {
	case xErr == nil && yErr == nil:
		return cmp.Compare(xNum, yNum)
	case xErr == nil:
		return -1
	case yErr == nil:
		return 1
	default:
		return strings.Compare(x, y)
	}
}

// Load reads `r` into a list holding one element per non-blank line. Trailing whitespace is dropped.
func Load(r io.Reader) (*list.LinkedList[string], error) {
	lines := new(list.LinkedList[string])
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		if err := lines.PushBack(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

// LoadFiles loads every file in `paths`; when there are none, `stdin` is loaded as the only input.
func LoadFiles(paths []string, stdin io.Reader) ([]*list.LinkedList[string], error) {
	if len(paths) == 0 {
		lines, err := Load(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []*list.LinkedList[string]{lines}, nil
	}

	inputs := make([]*list.LinkedList[string], 0, len(paths))
	for _, path := range paths {
		lines, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Loaded input.", "path", path, "lines", lines.Len())
		inputs = append(inputs, lines)
	}
	return inputs, nil
}

func loadFile(path string) (*list.LinkedList[string], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	lines, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// Run applies `opts` to `inputs` and returns the resulting list. Inputs are left untouched.
func Run(opts Options, inputs []*list.LinkedList[string]) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, errors.New("expected at least one input")
	}

	// Narrow down every input first; the rest of the pipeline only sees matching lines.
	if opts.Filter != "" {
		filtered := make([]*list.LinkedList[string], 0, len(inputs))
		for _, input := range inputs {
			matches, err := scan.MatchGlob(opts.Filter, input.All())
			if err != nil {
				return Result{}, err
			}
			matched, err := list.FromSeq(matches)
			if err != nil {
				return Result{}, err
			}
			filtered = append(filtered, matched)
		}
		inputs = filtered
	}

	compare := Compare(opts)
	var output *list.LinkedList[string]
	if opts.Sort {
		sorted := make([]iter.Seq[string], 0, len(inputs))
		for _, input := range inputs {
			sortedInput, err := input.MergeSort(compare)
			if err != nil {
				return Result{}, err
			}
			sorted = append(sorted, sortedInput.All())
		}
		merged, err := scan.MergeSorted(compare, sorted)
		if err != nil {
			return Result{}, err
		}
		if output, err = list.FromSeq(merged); err != nil {
			return Result{}, err
		}
	} else {
		output = new(list.LinkedList[string])
		for _, input := range inputs {
			for line := range input.All() {
				if err := output.PushBack(line); err != nil {
					return Result{}, err
				}
			}
		}
	}

	if opts.Unique {
		seen := make(map[string]struct{}, output.Len())
		output = output.Filter(func(line string) bool {
			if _, alreadySeen := seen[line]; alreadySeen {
				return false
			}
			seen[line] = struct{}{}
			return true
		})
	}

	if opts.Reverse {
		output = output.Reversed()
		compare = utils.Reverse(compare) // A reversed sorted list is sorted the other way around.
	}
	slog.Debug("Built the resulting list.", "inputs", len(inputs), "lines", output.Len(), "sorted", opts.Sort)

	result := Result{List: output}
	if opts.Search != "" {
		result.Searched = true
		if opts.Sort {
			found, err := output.LinearSearchSorted(opts.Search, compare)
			if err != nil {
				return Result{}, err
			}
			result.Found = found
		} else {
			result.Found = output.Contains(opts.Search)
		}
	}
	return result, nil
}
