// Package pattern defines the closed taxonomy of candlestick and chart
// pattern tags the evaluator recognizes. Tags arrive as strings from the
// upstream classifier and are matched case-insensitively against fixed sets,
// so a typo or an out-of-taxonomy tag never silently counts as confirmation.
package pattern

import "strings"

// Direction is the directional bias a pattern supports.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
)

// TagSet is a fixed set of pattern tags with case-insensitive membership.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from tags, lowercasing each entry.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[strings.ToLower(t)] = struct{}{}
	}
	return s
}

// Contains reports whether tag is in the set, ignoring case.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[strings.ToLower(tag)]
	return ok
}
