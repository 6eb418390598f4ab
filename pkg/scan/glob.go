// Line lists can be narrowed down with shell-like glob patterns before they are sorted; the following module
// implements glob matching over element streams.

package scan

import (
	"fmt"
	"iter"

	"v.io/v23/glob"
)

// MatchGlob matches the `elems` stream with the given glob `pattern` and yields the matching elements.
func MatchGlob(pattern string, elems iter.Seq[string]) (iter.Seq[string], error) {
	parsedPattern, err := glob.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return func(yield func(string) bool) {
		for elem := range elems {
			if parsedPattern.Head().Match(elem) {
				if !yield(elem) {
					return
				}
			}
		}
	}, nil
}
