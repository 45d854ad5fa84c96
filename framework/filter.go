package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters holds the -run/-skip selection patterns from the command line.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter is the Filter for these patterns.
//
// The filter is consulted for a flow before its subtests exist, so MustMatch
// works like go test -run: the pattern is split on "/" and each segment is
// matched against the corresponding element of the test path. A parent runs
// whenever every segment it covers matches, which lets a full-path pattern
// such as "^registration/new user" reach the subtest inside the flow.
func (r RegexFilters) AsFilter(id TestID) bool {
	if r.MustNotMatch.AnyMatch(id.String()) {
		return false
	}
	return !r.MustMatch.IsDefined() || r.MustMatch.AnyMatchPath(id.Path)
}

// PrintDescription explains the active filters at the start of a run, so a CI
// log makes it obvious when tests were deliberately excluded.
func (r RegexFilters) PrintDescription(dest io.Writer) {
	if !r.MustMatch.IsDefined() && !r.MustNotMatch.IsDefined() {
		return
	}
	fmt.Fprintln(dest, "Some tests will be skipped based on the filter criteria for this test run:")
	if r.MustMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any not matching %s\n", r.MustMatch)
	}
	if r.MustNotMatch.IsDefined() {
		fmt.Fprintf(dest, "  skip any matching %s\n", r.MustNotMatch)
	}
	fmt.Fprintln(dest)
}

type testPattern struct {
	whole    *regexp.Regexp
	segments []*regexp.Regexp
}

// RegexList is a repeatable flag.Value collecting regex patterns.
type RegexList struct {
	patterns []testPattern
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.whole.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser. As with go test -run, a "/" in
// the pattern separates per-level segments, so it cannot appear inside a
// regex group.
func (r *RegexList) Set(value string) error {
	whole, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	var segments []*regexp.Regexp
	for _, part := range strings.Split(value, "/") {
		seg, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		segments = append(segments, seg)
	}
	r.patterns = append(r.patterns, testPattern{whole: whole, segments: segments})
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.whole.MatchString(s) {
			return true
		}
	}
	return false
}

// AnyMatchPath reports whether any pattern matches the path segment by
// segment. Pattern segments beyond the path's depth are ignored, so a parent
// is accepted when a deeper pattern could still match one of its subtests.
func (r RegexList) AnyMatchPath(path []string) bool {
	for _, p := range r.patterns {
		matched := true
		for i, elem := range path {
			if i >= len(p.segments) {
				break
			}
			if !p.segments[i].MatchString(elem) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
