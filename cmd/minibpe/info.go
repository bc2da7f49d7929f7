package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/go-mini-bpe/internal/inspect"
	"github.com/example/go-mini-bpe/internal/vocabfile"
)

func newInfoCmd() *cobra.Command {
	var vocabPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe a saved vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:       %s\n", path)
			fmt.Fprintf(out, "format:     v%d\n", vocabfile.FormatVersion)
			fmt.Fprintf(out, "merges:     %d\n", tok.MergeCount())
			fmt.Fprintf(out, "vocab size: %d\n", tok.VocabSize())

			if tok.MergeCount() > 0 {
				fmt.Fprintln(out)
				inspect.WriteMergeTable(out, tok, limit)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "Vocabulary file (defaults to --vocab-path)")
	cmd.Flags().IntVar(&limit, "merges", 10, "Show at most this many merges (0 = all)")

	return cmd
}
