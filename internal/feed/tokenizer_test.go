package feed

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "whitespace trimmed",
			line: " a , b ,c ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted comma is literal",
			line: `"Shoes, Running",Nike,59.99`,
			want: []string{"Shoes, Running", "Nike", "59.99"},
		},
		{
			name: "empty fields preserved",
			line: "a,,c,",
			want: []string{"a", "", "c", ""},
		},
		{
			name: "single field",
			line: "only",
			want: []string{"only"},
		},
		{
			name: "empty line is one empty field",
			line: "",
			want: []string{""},
		},
		{
			name: "quotes stripped from output",
			line: `"hello","world"`,
			want: []string{"hello", "world"},
		},
		{
			name: "quote mid-field toggles",
			line: `say "a,b" now,next`,
			want: []string{"say a,b now", "next"},
		},
		{
			name: "unterminated quote swallows commas",
			line: `"a,b,c`,
			want: []string{"a,b,c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
