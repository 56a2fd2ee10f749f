package dsv_test

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// TestStringify tests writing row-major input with default options.
func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		input [][]string
		want  string
	}{
		{
			name:  "plain table",
			input: [][]string{{"a", "b"}, {"1", "2"}},
			want:  "a,b\n1,2",
		},
		{
			name:  "empty table",
			input: [][]string{},
			want:  "",
		},
		{
			name:  "header only",
			input: [][]string{{"a", "b"}},
			want:  "a,b",
		},
		{
			name:  "trailing empty columns are trimmed",
			input: [][]string{{"A", "B", "", ""}, {"x", "y"}},
			want:  "A,B\nx,y",
		},
		{
			name:  "trailing empty rows are trimmed",
			input: [][]string{{"a", "b"}, {"1", "2"}, {"", ""}, {}},
			want:  "a,b\n1,2",
		},
		{
			name:  "interior empty cells survive trimming",
			input: [][]string{{"a", "", "c"}, {"1", "", "3"}},
			want:  "a,,c\n1,,3",
		},
		{
			name:  "short rows are padded to the table width",
			input: [][]string{{"a", "b", "c"}, {"1"}},
			want:  "a,b,c\n1,,",
		},
		{
			name:  "separator content is quoted",
			input: [][]string{{"a,b", "c"}},
			want:  "\"a,b\",c",
		},
		{
			name:  "quote content is quoted and doubled",
			input: [][]string{{"say \"hi\"", "x"}},
			want:  "\"say \"\"hi\"\"\",x",
		},
		{
			name:  "line feed content is quoted",
			input: [][]string{{"a\nb", "c"}},
			want:  "\"a\nb\",c",
		},
		{
			name:  "harmless content is never quoted",
			input: [][]string{{"a b", "c;d"}},
			want:  "a b,c;d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dsv.Stringify(tt.input)
			if err != nil {
				t.Fatalf("Stringify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestStringifyWithOptions tests the write configuration knobs.
func TestStringifyWithOptions(t *testing.T) {
	input := [][]string{{"a", "b"}, {"1", "2"}}

	tests := []struct {
		name string
		opts func(dsv.WriteOptions) dsv.WriteOptions
		want string
	}{
		{
			name: "crlf line ends",
			opts: func(o dsv.WriteOptions) dsv.WriteOptions {
				o.LineEnd = "\r\n"
				return o
			},
			want: "a,b\r\n1,2",
		},
		{
			name: "cr line ends",
			opts: func(o dsv.WriteOptions) dsv.WriteOptions {
				o.LineEnd = "\r"
				return o
			},
			want: "a,b\r1,2",
		},
		{
			name: "unknown line end falls back to lf",
			opts: func(o dsv.WriteOptions) dsv.WriteOptions {
				o.LineEnd = "<br>"
				return o
			},
			want: "a,b\n1,2",
		},
		{
			name: "trailing line end",
			opts: func(o dsv.WriteOptions) dsv.WriteOptions {
				o.TrailingLineEnd = true
				return o
			},
			want: "a,b\n1,2\n",
		},
		{
			name: "custom separator",
			opts: func(o dsv.WriteOptions) dsv.WriteOptions {
				o.Separator = '\t'
				return o
			},
			want: "a\tb\n1\t2",
		},
		{
			name: "invalid separator falls back to comma",
			opts: func(o dsv.WriteOptions) dsv.WriteOptions {
				o.Separator = '\n'
				return o
			},
			want: "a,b\n1,2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dsv.StringifyWithOptions(input, tt.opts(dsv.DefaultWriteOptions()))
			if err != nil {
				t.Fatalf("StringifyWithOptions() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("StringifyWithOptions() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("trimming disabled keeps the emptiness", func(t *testing.T) {
		opts := dsv.DefaultWriteOptions()
		opts.TrimEmpty = false
		got, err := dsv.StringifyWithOptions([][]string{{"A", "B", ""}, {"x", "y", ""}}, opts)
		if err != nil {
			t.Fatalf("StringifyWithOptions() error = %v", err)
		}
		want := "A,B,\nx,y,"
		if got != want {
			t.Errorf("StringifyWithOptions() = %q, want %q", got, want)
		}
	})

	t.Run("disabled quote writes content verbatim", func(t *testing.T) {
		opts := dsv.DefaultWriteOptions()
		opts.Quote = 0
		got, err := dsv.StringifyWithOptions([][]string{{"say \"hi\"", "x"}}, opts)
		if err != nil {
			t.Fatalf("StringifyWithOptions() error = %v", err)
		}
		want := "say \"hi\",x"
		if got != want {
			t.Errorf("StringifyWithOptions() = %q, want %q", got, want)
		}
	})
}

// TestStringify_Tables tests the Table input shapes, including body
// reconstruction from the mapped rows.
func TestStringify_Tables(t *testing.T) {
	t.Run("table pointer", func(t *testing.T) {
		table := &dsv.Table{
			Header: []string{"a", "b"},
			Rows:   [][]string{{"1", "2"}},
		}
		got, err := dsv.Stringify(table)
		if err != nil {
			t.Fatalf("Stringify() error = %v", err)
		}
		if want := "a,b\n1,2"; got != want {
			t.Errorf("Stringify() = %q, want %q", got, want)
		}
	})

	t.Run("table value", func(t *testing.T) {
		table := dsv.Table{
			Header: []string{"a", "b"},
			Rows:   [][]string{{"1", "2"}},
		}
		got, err := dsv.Stringify(table)
		if err != nil {
			t.Fatalf("Stringify() error = %v", err)
		}
		if want := "a,b\n1,2"; got != want {
			t.Errorf("Stringify() = %q, want %q", got, want)
		}
	})

	t.Run("mapped rows reconstruct the body", func(t *testing.T) {
		table := &dsv.Table{
			Header: []string{"a", "b"},
			MappedRows: []map[string]string{
				{"a": "1", "b": "2"},
				{"b": "4"},
			},
		}
		got, err := dsv.Stringify(table)
		if err != nil {
			t.Fatalf("Stringify() error = %v", err)
		}
		if want := "a,b\n1,2\n,4"; got != want {
			t.Errorf("Stringify() = %q, want %q", got, want)
		}
	})
}

// TestStringify_UnsupportedInput tests the programming-error path.
func TestStringify_UnsupportedInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"nil table pointer", (*dsv.Table)(nil)},
		{"wrong element type", [][]int{{1, 2}}},
		{"scalar", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dsv.Stringify(tt.input)
			if !errors.Is(err, dsv.ErrUnsupportedInput) {
				t.Errorf("Stringify(%T) error = %v, want ErrUnsupportedInput", tt.input, err)
			}
		})
	}
}
