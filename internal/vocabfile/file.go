package vocabfile

import (
	"fmt"
	"os"

	"github.com/example/go-mini-bpe/internal/tokenizer"
)

// Save writes the learned vocabulary of t to path. The tokenizer must be
// built; saving an unbuilt tokenizer reports tokenizer.ErrNotBuilt.
func Save(t *tokenizer.Tokenizer, path string) error {
	if !t.Built() {
		return fmt.Errorf("vocabfile: save: %w", tokenizer.ErrNotBuilt)
	}
	if err := os.WriteFile(path, Encode(t.Merges()), 0o644); err != nil {
		return fmt.Errorf("vocabfile: write %s: %w", path, err)
	}
	return nil
}

// Load reads path and reconstructs a built tokenizer from it. The result
// carries no training corpus: it encodes and decodes but cannot learn
// further. A missing file surfaces as an fs.ErrNotExist error, distinct
// from the format errors Parse reports.
func Load(path string) (*tokenizer.Tokenizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabfile: read %s: %w", path, err)
	}

	merges, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t, err := tokenizer.FromMerges(merges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
