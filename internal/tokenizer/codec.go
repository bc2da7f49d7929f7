package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Encode converts text into symbols by replaying every learned merge, in
// rank order, over the raw UTF-8 bytes of the whole input. Unlike
// training, encoding does not segment first, so merges may span what the
// segmenter would have treated as separate words. Empty input encodes to
// an empty sequence.
func (t *Tokenizer) Encode(text string) ([]Symbol, error) {
	if !t.built {
		return nil, ErrNotBuilt
	}

	seq := bytesToSymbols(text)
	for _, m := range t.merges {
		seq = ReplacePair(seq, m.Pair, m.NewSymbol)
	}
	return seq, nil
}

// Decode expands tokens back into text. Symbols outside the vocabulary
// contribute no bytes, and byte runs that do not form valid UTF-8 are
// replaced with the Unicode replacement character, so Decode fails only
// on an unbuilt tokenizer.
func (t *Tokenizer) Decode(tokens []Symbol) (string, error) {
	if !t.built {
		return "", ErrNotBuilt
	}

	var buf []byte
	for _, tok := range tokens {
		buf = append(buf, t.vocab[tok]...)
	}
	return strings.ToValidUTF8(string(buf), string(utf8.RuneError)), nil
}

// expandMerges derives the byte expansion of every symbol: the 256 base
// bytes plus, in rank order, each merge's concatenated pair expansions.
// Computing the table once at build time keeps Decode a flat lookup.
func expandMerges(merges []Merge) map[Symbol][]byte {
	vocab := make(map[Symbol][]byte, ByteSymbols+len(merges))
	for b := 0; b < ByteSymbols; b++ {
		vocab[Symbol(b)] = []byte{byte(b)}
	}
	for _, m := range merges {
		left, right := vocab[m.Pair.Left], vocab[m.Pair.Right]
		exp := make([]byte, 0, len(left)+len(right))
		exp = append(exp, left...)
		exp = append(exp, right...)
		vocab[m.NewSymbol] = exp
	}
	return vocab
}
