package main

import (
	"strings"
	"testing"

	"github.com/example/go-mini-bpe/internal/tokenizer"
)

func TestInfoCmd_DescribesVocabulary(t *testing.T) {
	vocab := saveVocab(t, []tokenizer.Merge{
		{Pair: tokenizer.Pair{Left: 'h', Right: 'e'}, NewSymbol: 256},
		{Pair: tokenizer.Pair{Left: 256, Right: 'l'}, NewSymbol: 257},
	})

	stdout, _, err := runRoot(t, "", "info", "--vocab", vocab)
	if err != nil {
		t.Fatalf("info: %v", err)
	}

	for _, want := range []string{"format:     v1", "merges:     2", "vocab size: 258", "RANK", `"hel"`} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("info output missing %q:\n%s", want, stdout)
		}
	}
}

func TestInfoCmd_EmptyVocabularySkipsMergeTable(t *testing.T) {
	vocab := saveVocab(t, nil)

	stdout, _, err := runRoot(t, "", "info", "--vocab", vocab)
	if err != nil {
		t.Fatalf("info: %v", err)
	}

	if !strings.Contains(stdout, "merges:     0") {
		t.Fatalf("info output missing merge count:\n%s", stdout)
	}
	if strings.Contains(stdout, "RANK") {
		t.Fatalf("info printed a merge table for an empty vocabulary:\n%s", stdout)
	}
}
