package tokenizer

import (
	"errors"
	"reflect"
	"testing"
)

// buildFromTexts trains a tokenizer on texts with the given target size.
func buildFromTexts(t *testing.T, texts []string, vocabSize int) *Tokenizer {
	t.Helper()

	tok := New(Options{VocabSize: vocabSize})
	for _, text := range texts {
		if err := tok.Add(text); err != nil {
			t.Fatalf("Add(%q): %v", text, err)
		}
	}
	if err := tok.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tok
}

var trainingTexts = []string{
	"Hello world!",
	"This is a test.",
	"Hello again!",
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

func TestAdd_AfterBuild(t *testing.T) {
	tok := buildFromTexts(t, trainingTexts, 0)

	err := tok.Add("more text")
	if !errors.Is(err, ErrAlreadyBuilt) {
		t.Fatalf("Add after Build = %v; want ErrAlreadyBuilt", err)
	}
}

func TestBuild_Twice(t *testing.T) {
	tok := buildFromTexts(t, trainingTexts, 0)

	err := tok.Build()
	if !errors.Is(err, ErrAlreadyBuilt) {
		t.Fatalf("second Build = %v; want ErrAlreadyBuilt", err)
	}
}

func TestEncode_BeforeBuild(t *testing.T) {
	tok := New(Options{})

	_, err := tok.Encode("hello")
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Encode before Build = %v; want ErrNotBuilt", err)
	}
}

func TestDecode_BeforeBuild(t *testing.T) {
	tok := New(Options{})

	_, err := tok.Decode([]Symbol{72, 105})
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Decode before Build = %v; want ErrNotBuilt", err)
	}
}

func TestBuilt_TransitionsOnBuild(t *testing.T) {
	tok := New(Options{})
	if tok.Built() {
		t.Fatal("new tokenizer reports Built() = true")
	}

	if err := tok.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !tok.Built() {
		t.Fatal("tokenizer reports Built() = false after Build")
	}
}

// ---------------------------------------------------------------------------
// Training
// ---------------------------------------------------------------------------

func TestBuild_LearnsMerges(t *testing.T) {
	tok := buildFromTexts(t, trainingTexts, 0)

	if tok.MergeCount() == 0 {
		t.Fatal("expected at least one merge from repeated corpus text")
	}
	if got, want := tok.VocabSize(), ByteSymbols+tok.MergeCount(); got != want {
		t.Fatalf("VocabSize() = %d; want %d", got, want)
	}
}

func TestBuild_AssignsSequentialSymbols(t *testing.T) {
	tok := buildFromTexts(t, trainingTexts, 0)

	for i, m := range tok.Merges() {
		if want := FirstMergeSymbol + Symbol(i); m.NewSymbol != want {
			t.Fatalf("merge %d NewSymbol = %d; want %d", i, m.NewSymbol, want)
		}
	}
}

func TestBuild_MergesReferenceDefinedSymbols(t *testing.T) {
	tok := buildFromTexts(t, trainingTexts, 0)

	if _, err := FromMerges(tok.Merges()); err != nil {
		t.Fatalf("learned merges do not replay cleanly: %v", err)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := buildFromTexts(t, trainingTexts, 0)
	b := buildFromTexts(t, trainingTexts, 0)

	if !reflect.DeepEqual(a.Merges(), b.Merges()) {
		t.Fatalf("two identical training runs diverged:\n  %v\n  %v", a.Merges(), b.Merges())
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	tok := New(Options{})
	if err := tok.Build(); err != nil {
		t.Fatalf("Build on empty corpus: %v", err)
	}

	if tok.MergeCount() != 0 {
		t.Fatalf("MergeCount() = %d; want 0", tok.MergeCount())
	}

	got, err := tok.Encode("Hi")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := []Symbol{72, 105}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode(%q) = %v; want %v", "Hi", got, want)
	}
}

func TestBuild_StopsWhenNoPairRepeats(t *testing.T) {
	// Every adjacent pair in a single "abcd" word occurs exactly once, so
	// training must stop before learning anything.
	tok := buildFromTexts(t, []string{"abcd"}, 0)

	if tok.MergeCount() != 0 {
		t.Fatalf("MergeCount() = %d; want 0", tok.MergeCount())
	}
}

func TestBuild_StopsAtTargetVocabSize(t *testing.T) {
	// "aaaa" repeated keeps producing repeatable pairs, so the target size
	// is the only stop condition that can fire.
	tok := buildFromTexts(t, []string{"aaaa aaaa aaaa"}, ByteSymbols+2)

	if tok.MergeCount() != 2 {
		t.Fatalf("MergeCount() = %d; want 2", tok.MergeCount())
	}
}

func TestBuild_TargetAtOrBelowByteAlphabet(t *testing.T) {
	for _, size := range []int{1, ByteSymbols - 1, ByteSymbols} {
		tok := buildFromTexts(t, trainingTexts, size)
		if tok.MergeCount() != 0 {
			t.Fatalf("VocabSize %d: MergeCount() = %d; want 0", size, tok.MergeCount())
		}
	}
}

func TestBuild_TieBreaksTowardSmallestPair(t *testing.T) {
	// "ab" and "ba" both occur twice; the first learned merge must be the
	// lexicographically smaller pair (a,b).
	tok := buildFromTexts(t, []string{"ab", "ab", "ba", "ba"}, ByteSymbols+1)

	merges := tok.Merges()
	if len(merges) != 1 {
		t.Fatalf("MergeCount() = %d; want 1", len(merges))
	}
	if want := (Pair{Left: 'a', Right: 'b'}); merges[0].Pair != want {
		t.Fatalf("first merge pair = %v; want %v", merges[0].Pair, want)
	}
}

func TestVocabSize_BeforeBuildReportsTarget(t *testing.T) {
	tok := New(Options{VocabSize: 512})
	if got := tok.VocabSize(); got != 512 {
		t.Fatalf("VocabSize() = %d; want 512", got)
	}

	tok = New(Options{})
	if got := tok.VocabSize(); got != DefaultVocabSize {
		t.Fatalf("VocabSize() = %d; want %d", got, DefaultVocabSize)
	}
}

// ---------------------------------------------------------------------------
// FromMerges
// ---------------------------------------------------------------------------

func TestFromMerges_IsSealed(t *testing.T) {
	tok, err := FromMerges([]Merge{
		{Pair: Pair{Left: 'h', Right: 'e'}, NewSymbol: 256},
	})
	if err != nil {
		t.Fatalf("FromMerges: %v", err)
	}

	if !tok.Built() {
		t.Fatal("FromMerges tokenizer reports Built() = false")
	}
	if err := tok.Add("text"); !errors.Is(err, ErrAlreadyBuilt) {
		t.Fatalf("Add = %v; want ErrAlreadyBuilt", err)
	}
	if err := tok.Build(); !errors.Is(err, ErrAlreadyBuilt) {
		t.Fatalf("Build = %v; want ErrAlreadyBuilt", err)
	}
}

func TestFromMerges_ChainedExpansion(t *testing.T) {
	tok, err := FromMerges([]Merge{
		{Pair: Pair{Left: 'h', Right: 'e'}, NewSymbol: 256},
		{Pair: Pair{Left: 256, Right: 'l'}, NewSymbol: 257},
	})
	if err != nil {
		t.Fatalf("FromMerges: %v", err)
	}

	got, err := tok.Decode([]Symbol{257})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "hel" {
		t.Fatalf("Decode([257]) = %q; want %q", got, "hel")
	}
}

func TestFromMerges_UndefinedSymbol(t *testing.T) {
	tests := []struct {
		name   string
		merges []Merge
	}{
		{
			name:   "left references later symbol",
			merges: []Merge{{Pair: Pair{Left: 400, Right: 'a'}, NewSymbol: 256}},
		},
		{
			name:   "right references later symbol",
			merges: []Merge{{Pair: Pair{Left: 'a', Right: 257}, NewSymbol: 256}},
		},
		{
			name: "self reference",
			merges: []Merge{
				{Pair: Pair{Left: 'a', Right: 'b'}, NewSymbol: 256},
				{Pair: Pair{Left: 257, Right: 257}, NewSymbol: 257},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromMerges(tc.merges); err == nil {
				t.Fatal("expected error for merge referencing undefined symbol")
			}
		})
	}
}
