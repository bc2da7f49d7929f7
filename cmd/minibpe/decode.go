package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/go-mini-bpe/internal/tokenizer"
	"github.com/example/go-mini-bpe/internal/vocabfile"
)

func newDecodeCmd() *cobra.Command {
	var vocabPath string

	cmd := &cobra.Command{
		Use:   "decode [token id ...]",
		Short: "Decode token ids back into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			path := vocabPath
			if path == "" {
				path = cfg.Vocab.Path
			}
			tok, err := vocabfile.Load(path)
			if err != nil {
				return err
			}

			fields := args
			if len(fields) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				fields = strings.Fields(string(raw))
			}

			ids := make([]tokenizer.Symbol, 0, len(fields))
			for _, f := range fields {
				n, err := strconv.ParseUint(f, 10, 32)
				if err != nil {
					return fmt.Errorf("invalid token id %q: %w", f, err)
				}
				ids = append(ids, tokenizer.Symbol(n))
			}

			text, err := tok.Decode(ids)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "Vocabulary file (defaults to --vocab-path)")

	return cmd
}
