package segment

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitCoversInput(t *testing.T) {
	inputs := []string{
		"",
		"Hello world!",
		"This is a test.",
		"I'm sure it can't fail, we'll see.",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\n",
		"numbers 123 and mixed a1b2",
		"symbols: #$%& (grouped)",
		"unicode: こんにちは世界 — Grüße, 北京",
		"emoji 🌍🌍 and more",
		"a  b   c",
		"....",
		" ",
		"\n\n\n",
	}

	seg := GPT2()
	for _, in := range inputs {
		pieces := seg.Split(in)
		if got := strings.Join(pieces, ""); got != in {
			t.Errorf("Split(%q) pieces do not cover input: joined = %q", in, got)
		}
	}
}

func TestSplitPieces(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "words and punctuation",
			in:   "Hello world!",
			want: []string{"Hello", " world", "!"},
		},
		{
			name: "contractions",
			in:   "I'm can't we'll",
			want: []string{"I", "'m", " can", "'t", " we", "'ll"},
		},
		{
			name: "uppercase contraction",
			in:   "IT'S",
			want: []string{"IT", "'S"},
		},
		{
			name: "digit runs split from letters",
			in:   "abc 123",
			want: []string{"abc", " 123"},
		},
		{
			name: "extra interior space stays with next word",
			in:   "a  b",
			want: []string{"a", " ", " b"},
		},
		{
			name: "trailing whitespace is one piece",
			in:   "end  ",
			want: []string{"end", "  "},
		},
		{
			name: "punctuation run with leading space",
			in:   "wait ...",
			want: []string{"wait", " ..."},
		},
		{
			name: "newline separated",
			in:   "a\nb",
			want: []string{"a", "\n", "b"},
		},
		{
			name: "letters across scripts form one run",
			in:   "こんにちは世界",
			want: []string{"こんにちは世界"},
		},
		{
			name: "emoji treated as punctuation run",
			in:   "hi 🌍",
			want: []string{"hi", " 🌍"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	seg := GPT2()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := seg.Split(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Split(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}
