package tokenizer

import "github.com/example/go-mini-bpe/internal/segment"

// CountPairs tallies every adjacent symbol pair inside each word. Pairs
// never straddle two words, so word boundaries are permanent merge
// boundaries during training. Words with fewer than two symbols
// contribute nothing.
func CountPairs(words [][]Symbol) map[Pair]int {
	counts := make(map[Pair]int)
	for _, word := range words {
		for i := 0; i+1 < len(word); i++ {
			counts[Pair{Left: word[i], Right: word[i+1]}]++
		}
	}
	return counts
}

// CountPairsInText segments text with seg and tallies the adjacent byte
// pairs of the resulting words. It reports the counts the first training
// round would see for that text. A nil seg selects the default segmenter.
func CountPairsInText(text string, seg Segmenter) map[Pair]int {
	if seg == nil {
		seg = segment.GPT2()
	}
	words := seg.Split(text)
	corpus := make([][]Symbol, len(words))
	for i, w := range words {
		corpus[i] = bytesToSymbols(w)
	}
	return CountPairs(corpus)
}

// ReplacePair rewrites seq left to right, replacing every adjacent
// occurrence of pair with sym. Matches never overlap and the scan does
// not revisit its own output: after a replacement it advances past both
// consumed symbols. When the pair does not occur the input slice is
// returned as is.
func ReplacePair(seq []Symbol, pair Pair, sym Symbol) []Symbol {
	i := indexPair(seq, pair)
	if i < 0 {
		return seq
	}

	out := make([]Symbol, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	for i < len(seq) {
		if i+1 < len(seq) && seq[i] == pair.Left && seq[i+1] == pair.Right {
			out = append(out, sym)
			i += 2
			continue
		}
		out = append(out, seq[i])
		i++
	}
	return out
}

func indexPair(seq []Symbol, pair Pair) int {
	for i := 0; i+1 < len(seq); i++ {
		if seq[i] == pair.Left && seq[i+1] == pair.Right {
			return i
		}
	}
	return -1
}
