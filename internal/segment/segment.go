// Package segment splits raw text into the word-like pieces that
// vocabulary training operates on. Merges learned during training never
// cross piece boundaries, so the splitter decides which byte sequences
// can ever fuse into a single token.
package segment

import "github.com/dlclark/regexp2"

// gpt2Pattern is the GPT-2 pre-tokenization pattern. It peels off common
// English contractions, then letter runs, digit runs and punctuation runs
// (each optionally led by one space), and finally whitespace. The
// `\s+(?!\S)` alternative keeps interior whitespace runs from swallowing
// the single space that belongs to the following word, which needs a
// negative lookahead and therefore the regexp2 engine rather than RE2.
var gpt2Pattern = regexp2.MustCompile(
	`'s|'t|'re|'ve|'m|'ll|'d| ?[\p{L}]+| ?[\p{N}]+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`,
	regexp2.IgnoreCase,
)

// GPT2Segmenter splits text with the GPT-2 pre-tokenization pattern. The
// zero value is ready to use and safe for concurrent callers.
type GPT2Segmenter struct{}

// GPT2 returns the default segmenter.
func GPT2() GPT2Segmenter { return GPT2Segmenter{} }

// Split partitions text into consecutive pieces. Every byte of the input
// lands in exactly one piece: concatenating the result reproduces text
// unchanged. Empty input yields no pieces.
func (GPT2Segmenter) Split(text string) []string {
	if text == "" {
		return nil
	}

	var pieces []string
	m, err := gpt2Pattern.FindStringMatch(text)
	for m != nil && err == nil {
		pieces = append(pieces, m.String())
		m, err = gpt2Pattern.FindNextMatch(m)
	}
	return pieces
}
