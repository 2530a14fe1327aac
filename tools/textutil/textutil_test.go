package textutil

import (
	"math"
	"strings"
	"testing"

	"github.com/leofalp/lifemcp/core/toolerr"
)

// TestSummarize checks fragment selection for each length setting.
func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		length  string
		want    string
	}{
		{
			name:    "short keeps two fragments",
			content: "S1. S2. S3.",
			length:  "short",
			want:    "S1. S2.",
		},
		{
			name:    "medium keeps five fragments",
			content: "A. B. C. D. E. F. G.",
			length:  "medium",
			want:    "A. B. C. D. E.",
		},
		{
			name:    "long capped by availability",
			content: "One. Two. Three.",
			length:  "long",
			want:    "One. Two. Three.",
		},
		{
			name:    "fragments are trimmed",
			content: "  First sentence.   Second sentence.  ",
			length:  "short",
			want:    "First sentence. Second sentence.",
		},
		{
			name:    "content without periods becomes one fragment",
			content: "no terminator here",
			length:  "short",
			want:    "no terminator here.",
		},
		{
			name:    "empty content",
			content: "",
			length:  "medium",
			want:    InsufficientContent,
		},
		{
			name:    "only periods and whitespace",
			content: " . . . ",
			length:  "medium",
			want:    InsufficientContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.content, tt.length)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSummarizeUnknownLength checks that an unsupported length is rejected.
func TestSummarizeUnknownLength(t *testing.T) {
	_, err := Summarize("Some text.", "gigantic")
	if !toolerr.IsInvalidArgument(err) {
		t.Errorf("Summarize() error = %v, want invalid argument", err)
	}
	if err != nil && !strings.Contains(err.Error(), "gigantic") {
		t.Errorf("Summarize() error = %v, want the offending length in the message", err)
	}
}

// TestSlashSimilarity checks the Jaccard scoring over character sets.
func TestSlashSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "identical terms", input: "apple/apple", want: 1.0},
		{name: "disjoint character sets", input: "abc/def", want: 0.0},
		{name: "partial overlap", input: "abc/ab", want: 2.0 / 3.0},
		{name: "case-insensitive", input: "ABC/abc", want: 1.0},
		{name: "whitespace ignored", input: " ab / ba ", want: 1.0},
		{name: "repeats collapse into the set", input: "aab/ab", want: 1.0},
		{name: "multibyte characters", input: "강남/강북", want: 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlashSimilarity(tt.input)
			if err != nil {
				t.Fatalf("SlashSimilarity(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("SlashSimilarity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSlashSimilarityInvalid checks the input shape validation.
func TestSlashSimilarityInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no slash", input: "apple"},
		{name: "two slashes", input: "a/b/c"},
		{name: "empty left side", input: "/right"},
		{name: "empty right side", input: "left/"},
		{name: "whitespace-only sides", input: " / "},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SlashSimilarity(tt.input)
			if !toolerr.IsInvalidArgument(err) {
				t.Errorf("SlashSimilarity(%q) error = %v, want invalid argument", tt.input, err)
			}
		})
	}
}

// TestLogarithm checks each supported base against known values.
func TestLogarithm(t *testing.T) {
	tests := []struct {
		name   string
		number float64
		base   string
		want   float64
	}{
		{name: "base two", number: 8, base: "2", want: 3},
		{name: "base two of a power of two", number: 1024, base: "2", want: 10},
		{name: "base ten", number: 100, base: "10", want: 2},
		{name: "natural log of e", number: math.E, base: "e", want: 1},
		{name: "log of one is zero", number: 1, base: "e", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Logarithm(tt.number, tt.base)
			if err != nil {
				t.Fatalf("Logarithm(%v, %q) error = %v", tt.number, tt.base, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Logarithm(%v, %q) = %v, want %v", tt.number, tt.base, got, tt.want)
			}
		})
	}
}

// TestLogarithmInvalid checks domain and base validation.
func TestLogarithmInvalid(t *testing.T) {
	tests := []struct {
		name   string
		number float64
		base   string
	}{
		{name: "zero number", number: 0, base: "e"},
		{name: "negative number", number: -4, base: "2"},
		{name: "unsupported base", number: 10, base: "3"},
		{name: "empty base", number: 10, base: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Logarithm(tt.number, tt.base)
			if !toolerr.IsInvalidArgument(err) {
				t.Errorf("Logarithm(%v, %q) error = %v, want invalid argument", tt.number, tt.base, err)
			}
		})
	}
}
