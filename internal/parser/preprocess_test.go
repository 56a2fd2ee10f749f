package parser

import "testing"

// TestFoldLineBreaks tests line-break normalization in both modes.
func TestFoldLineBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		loose bool
		want  string
	}{
		{
			name:  "crlf folds to lf",
			input: "a\r\nb",
			want:  "a\nb",
		},
		{
			name:  "lone cr folds to lf",
			input: "a\rb",
			want:  "a\nb",
		},
		{
			name:  "cr lf cr reads as crlf then cr",
			input: "a\r\n\rb",
			want:  "a\n\nb",
		},
		{
			name:  "lf cr is two breaks in strict mode",
			input: "a\n\rb",
			want:  "a\n\nb",
		},
		{
			name:  "lf cr is one break in loose mode",
			input: "a\n\rb",
			loose: true,
			want:  "a\nb",
		},
		{
			name:  "crlf is still one break in loose mode",
			input: "a\r\nb",
			loose: true,
			want:  "a\nb",
		},
		{
			name:  "mixed flavors",
			input: "a\r\nb\rc\nd",
			want:  "a\nb\nc\nd",
		},
		{
			name:  "no breaks",
			input: "abc",
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := foldLineBreaks(tt.input, tt.loose); got != tt.want {
				t.Errorf("foldLineBreaks(%q, %v) = %q, want %q", tt.input, tt.loose, got, tt.want)
			}
		})
	}
}

// TestPreprocess tests the full preparation pass: fold, terminating line
// feed, NUL removal.
func TestPreprocess(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		loose           bool
		requireTrailing bool
		want            string
	}{
		{
			name:  "missing trailing line feed is added",
			input: "a,b",
			want:  "a,b\n",
		},
		{
			name:  "present trailing line feed is not doubled",
			input: "a,b\n",
			want:  "a,b\n",
		},
		{
			name:            "required trailing line feed is always added",
			input:           "a,b\n",
			requireTrailing: true,
			want:            "a,b\n\n",
		},
		{
			name:  "nul characters are removed",
			input: "a\x00b\n",
			want:  "ab\n",
		},
		{
			name:  "nul between cr and lf does not hide the pair",
			input: "a\r\x00\nb",
			want:  "a\n\nb\n",
		},
		{
			name:  "crlf normalized and terminated",
			input: "a\r\nb",
			want:  "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocess(tt.input, tt.loose, tt.requireTrailing); got != tt.want {
				t.Errorf("preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
