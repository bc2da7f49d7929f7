// Package tokenizer implements a byte-pair-encoding tokenizer that learns
// a subword vocabulary from a training corpus. Training starts from the
// 256 byte values and repeatedly fuses the most frequent adjacent symbol
// pair into a fresh symbol until the target vocabulary size is reached.
// Encoding replays the learned merges in order over raw UTF-8 bytes;
// decoding expands every symbol back to the bytes it stands for.
//
// A Tokenizer moves through three states: it starts empty, accumulates
// corpus text through Add, and is sealed by a single Build call. After
// Build the merge list is immutable and only Encode and Decode remain
// available.
package tokenizer

import (
	"errors"
	"fmt"

	"github.com/example/go-mini-bpe/internal/segment"
)

const (
	// ByteSymbols is the size of the base alphabet: one symbol per byte value.
	ByteSymbols = 256

	// DefaultVocabSize bounds training when Options.VocabSize is zero.
	DefaultVocabSize = 300
)

// FirstMergeSymbol is the id assigned to the first learned merge. Earlier
// ids denote raw bytes.
const FirstMergeSymbol Symbol = ByteSymbols

var (
	// ErrAlreadyBuilt is returned by Add and Build once the vocabulary is
	// sealed.
	ErrAlreadyBuilt = errors.New("tokenizer: vocabulary already built")

	// ErrNotBuilt is returned by Encode and Decode before Build has run.
	ErrNotBuilt = errors.New("tokenizer: vocabulary not built")
)

// Symbol identifies one vocabulary entry. Values below ByteSymbols stand
// for single raw bytes; values from FirstMergeSymbol up are learned
// merge tokens.
type Symbol uint32

// Pair is an ordered pair of adjacent symbols, the unit of merging.
type Pair struct {
	Left  Symbol
	Right Symbol
}

// Merge records one learned substitution: every adjacent occurrence of
// Pair rewrites to NewSymbol. A merge's rank is its position in the
// learned list; both training and encoding apply merges in rank order.
type Merge struct {
	Pair      Pair
	NewSymbol Symbol
}

// Segmenter splits raw text into the word pieces whose boundaries merges
// may never cross during training. Implementations must cover their
// input: concatenating the returned pieces yields the input unchanged.
type Segmenter interface {
	Split(text string) []string
}

// Options configure a new Tokenizer. The zero value selects
// DefaultVocabSize and the GPT-2 style segmenter.
type Options struct {
	// VocabSize is the target vocabulary size, counting the 256 byte
	// symbols. Values at or below ByteSymbols learn no merges.
	VocabSize int

	// Segmenter overrides the training-time word splitter.
	Segmenter Segmenter
}

// Tokenizer learns and applies a byte-pair-encoding vocabulary. It is not
// safe for concurrent mutation; once built it is immutable and safe to
// share.
type Tokenizer struct {
	vocabSize int
	seg       Segmenter
	built     bool

	// corpus holds one symbol sequence per word while accumulating; Build
	// consumes it.
	corpus [][]Symbol

	merges []Merge
	vocab  map[Symbol][]byte
}

// New returns an empty tokenizer ready to accumulate corpus text.
func New(opts Options) *Tokenizer {
	size := opts.VocabSize
	if size == 0 {
		size = DefaultVocabSize
	}
	seg := opts.Segmenter
	if seg == nil {
		seg = segment.GPT2()
	}
	return &Tokenizer{vocabSize: size, seg: seg}
}

// FromMerges reconstructs a built tokenizer from a merge list, assigning
// ranks by slice order. The result carries no training corpus, so Add and
// Build report ErrAlreadyBuilt. Each merge may reference only byte
// symbols or the product of an earlier merge.
func FromMerges(merges []Merge) (*Tokenizer, error) {
	defined := make(map[Symbol]bool, len(merges))
	for i, m := range merges {
		if err := checkSymbol(m.Pair.Left, defined); err != nil {
			return nil, fmt.Errorf("tokenizer: merge %d: left: %w", i, err)
		}
		if err := checkSymbol(m.Pair.Right, defined); err != nil {
			return nil, fmt.Errorf("tokenizer: merge %d: right: %w", i, err)
		}
		defined[m.NewSymbol] = true
	}

	t := &Tokenizer{
		vocabSize: ByteSymbols + len(merges),
		built:     true,
		merges:    append([]Merge(nil), merges...),
	}
	t.vocab = expandMerges(t.merges)
	return t, nil
}

func checkSymbol(s Symbol, defined map[Symbol]bool) error {
	if s < ByteSymbols || defined[s] {
		return nil
	}
	return fmt.Errorf("references undefined symbol %d", s)
}

// Add segments text into words and appends them to the training corpus.
// Adding is legal only before Build; afterwards it reports
// ErrAlreadyBuilt and leaves the tokenizer unchanged.
func (t *Tokenizer) Add(text string) error {
	if t.built {
		return ErrAlreadyBuilt
	}
	for _, word := range t.seg.Split(text) {
		t.corpus = append(t.corpus, bytesToSymbols(word))
	}
	return nil
}

// Build learns the merge list from the accumulated corpus and seals the
// tokenizer. Each round rewrites the corpus with the chosen merge and
// recounts from scratch. Building an empty corpus is legal and yields a
// byte-level tokenizer with no merges. Build runs at most once.
func (t *Tokenizer) Build() error {
	if t.built {
		return ErrAlreadyBuilt
	}
	t.built = true

	counts := CountPairs(t.corpus)
	for next := FirstMergeSymbol; int(next) < t.vocabSize; next++ {
		if len(counts) == 0 {
			break
		}
		best, n := mostFrequent(counts)
		if n <= 1 {
			break
		}

		t.merges = append(t.merges, Merge{Pair: best, NewSymbol: next})
		for i, word := range t.corpus {
			t.corpus[i] = ReplacePair(word, best, next)
		}
		counts = CountPairs(t.corpus)
	}

	t.vocab = expandMerges(t.merges)
	t.corpus = nil
	return nil
}

// mostFrequent returns the pair with the highest count. Ties break toward
// the smallest pair (Left first, then Right) so training is deterministic
// regardless of map iteration order.
func mostFrequent(counts map[Pair]int) (Pair, int) {
	var best Pair
	bestCount := 0
	for p, n := range counts {
		if n > bestCount || (n == bestCount && pairLess(p, best)) {
			best, bestCount = p, n
		}
	}
	return best, bestCount
}

func pairLess(a, b Pair) bool {
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	return a.Right < b.Right
}

// Built reports whether the vocabulary has been sealed by Build or
// FromMerges.
func (t *Tokenizer) Built() bool { return t.built }

// Merges returns a copy of the learned merge list in rank order. Before
// Build it returns nil.
func (t *Tokenizer) Merges() []Merge {
	if t.merges == nil {
		return nil
	}
	return append([]Merge(nil), t.merges...)
}

// MergeCount returns the number of learned merges.
func (t *Tokenizer) MergeCount() int { return len(t.merges) }

// VocabSize returns the number of distinct symbols the tokenizer can
// emit: the 256 byte symbols plus one per learned merge. Before Build it
// reports the configured training target instead.
func (t *Tokenizer) VocabSize() int {
	if !t.built {
		return t.vocabSize
	}
	return ByteSymbols + len(t.merges)
}

// bytesToSymbols widens the UTF-8 bytes of word into base symbols.
func bytesToSymbols(word string) []Symbol {
	symbols := make([]Symbol, len(word))
	for i := 0; i < len(word); i++ {
		symbols[i] = Symbol(word[i])
	}
	return symbols
}
