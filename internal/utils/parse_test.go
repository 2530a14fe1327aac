package utils

import (
	"testing"
)

// TestParseStringAs_Float covers the numeric path used for money and rate
// prompt arguments.
func TestParseStringAs_Float(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:    "plain integer string",
			input:   "3000000",
			want:    3000000,
			wantErr: false,
		},
		{
			name:    "decimal string",
			input:   "0.05",
			want:    0.05,
			wantErr: false,
		},
		{
			name:    "negative value",
			input:   "-1",
			want:    -1,
			wantErr: false,
		},
		{
			name:    "not a number",
			input:   "three million",
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[float64](tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseStringAs() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseStringAs_Int covers the integer path used for month counts.
func TestParseStringAs_Int(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:    "twelve",
			input:   "12",
			want:    12,
			wantErr: false,
		},
		{
			name:    "decimal is not an int",
			input:   "12.5",
			want:    0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[int](tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseStringAs() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseStringAs_String verifies strings pass through untouched.
func TestParseStringAs_String(t *testing.T) {
	got, err := ParseStringAs[string]("City Hall")
	if err != nil {
		t.Fatalf("ParseStringAs() error = %v", err)
	}
	if got != "City Hall" {
		t.Errorf("ParseStringAs() = %q, want %q", got, "City Hall")
	}
}

// TestParseStringAs_StringSlice covers the slice path used for the multi-place
// lookup's names argument, including the JSON-repair retry for hand-typed
// input.
func TestParseStringAs_StringSlice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:    "valid JSON array",
			input:   `["City Hall", "Gangnam"]`,
			want:    []string{"City Hall", "Gangnam"},
			wantErr: false,
		},
		{
			name:    "single quotes get repaired",
			input:   `['City Hall', 'Gangnam']`,
			want:    []string{"City Hall", "Gangnam"},
			wantErr: false,
		},
		{
			name:    "empty array",
			input:   `[]`,
			want:    []string{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringAs[[]string](tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringAs() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStringAs() = %v (len %d), want %v (len %d)", got, len(got), tt.want, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ParseStringAs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
