package woordenlijst_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/farhanyp/woordenlijst"
	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short text untouched", input: "hello", limit: 100, want: "hello"},
		{name: "empty text", input: "", limit: 100, want: ""},
		{name: "text at exactly the limit", input: strings.Repeat("a", 100), limit: 100, want: strings.Repeat("a", 100)},
		{name: "text one over the limit", input: strings.Repeat("a", 101), limit: 100, want: strings.Repeat("a", 100) + "..."},
		{name: "long text truncated", input: strings.Repeat("word ", 50), limit: 10, want: "word word ..."},
		{name: "multibyte runes counted not bytes", input: strings.Repeat("日", 5), limit: 3, want: "日日日..."},
		{name: "zero limit", input: "hello", limit: 0, want: ""},
		{name: "negative limit", input: "hello", limit: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, woordenlijst.Preview(tt.input, tt.limit))
		})
	}
}

func TestIsValidSlotName(t *testing.T) {
	invalidUTF8 := string([]byte{'a', 0xff, 'b'})

	tt := []struct {
		Name string
		In   string
		Want bool
	}{
		{Name: "empty name", In: "", Want: false},
		{Name: "single dot", In: ".", Want: false},
		{Name: "double dot", In: "..", Want: false},
		{Name: "contains slash", In: "a/b.txt", Want: false},
		{Name: "contains backslash", In: `a\b.txt`, Want: false},
		{Name: "contains question mark", In: "a?.txt", Want: false},
		{Name: "contains hash", In: "a#.txt", Want: false},
		{Name: "contains tilde", In: "~a.txt", Want: false},
		{Name: "contains space", In: "my file.txt", Want: false},
		{Name: "contains tab", In: "my\tfile.txt", Want: false},
		{Name: "contains NUL", In: "a\x00b.txt", Want: false},
		{Name: "contains DEL", In: "a\x7fb.txt", Want: false},
		{Name: "contains control char", In: "a\x1fb.txt", Want: false},
		{Name: "invalid utf8", In: invalidUTF8, Want: false},

		{Name: "simple valid", In: "upload.txt", Want: true},
		{Name: "hidden file valid", In: ".hidden", Want: true},
		{Name: "underscores and dashes valid", In: "my-file_v2.txt", Want: true},
		{Name: "unicode valid", In: "woordenlijst.txt", Want: true},
		{Name: "non-ascii valid", In: "wöördenlijst.txt", Want: true},
	}

	if utf8.ValidString(invalidUTF8) {
		t.Fatalf("test setup error: invalidUTF8 is unexpectedly valid")
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, woordenlijst.IsValidSlotName(tc.In))
		})
	}
}
