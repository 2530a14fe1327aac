package textutil

import (
	"math"
	"strings"

	"github.com/leofalp/lifemcp/core/toolerr"
)

// Fragment counts selected by the summary length setting.
var summaryLengths = map[string]int{
	"short":  2,
	"medium": 5,
	"long":   10,
}

// InsufficientContent is the [Summarize] result for content that yields no
// usable fragments. It is a normal result, not an error.
const InsufficientContent = "Content is too short to summarize."

// Summarize produces a leading-fragment summary: content is split on
// periods, fragments are trimmed and empties dropped, and the first
// fragments are rejoined according to length (short 2, medium 5, long 10).
func Summarize(content, length string) (string, error) {
	limit, ok := summaryLengths[length]
	if !ok {
		return "", toolerr.Invalidf("length must be one of short, medium, long; got %q", length)
	}

	var fragments []string
	for _, part := range strings.Split(content, ".") {
		if part = strings.TrimSpace(part); part != "" {
			fragments = append(fragments, part)
		}
	}
	if len(fragments) == 0 {
		return InsufficientContent, nil
	}
	if len(fragments) > limit {
		fragments = fragments[:limit]
	}

	return strings.Join(fragments, ". ") + ".", nil
}

// SlashSimilarity scores how alike the two sides of a "a/b" pair are, as
// the Jaccard index of their unique character sets: 1.0 for identical sets,
// 0.0 for disjoint ones. Comparison is case-insensitive and ignores
// surrounding whitespace.
func SlashSimilarity(input string) (float64, error) {
	if strings.Count(input, "/") != 1 {
		return 0, toolerr.Invalidf("input must contain exactly one '/' separating two terms; got %q", input)
	}

	left, right, _ := strings.Cut(input, "/")
	left = strings.ToLower(strings.TrimSpace(left))
	right = strings.ToLower(strings.TrimSpace(right))
	if left == "" || right == "" {
		return 0, toolerr.Invalidf("both sides of the '/' must be non-empty; got %q", input)
	}

	return jaccard(runeSet(left), runeSet(right)), nil
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func jaccard(a, b map[rune]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for r := range a {
		if _, ok := b[r]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}

// Logarithm computes the logarithm of a positive number in the requested
// base: "2", "10", or "e" for the natural logarithm.
func Logarithm(number float64, base string) (float64, error) {
	if number <= 0 {
		return 0, toolerr.Invalidf("number must be greater than zero; got %v", number)
	}

	switch base {
	case "2":
		return math.Log2(number), nil
	case "10":
		return math.Log10(number), nil
	case "e":
		return math.Log(number), nil
	default:
		return 0, toolerr.Invalidf("base must be one of 2, 10, e; got %q", base)
	}
}
