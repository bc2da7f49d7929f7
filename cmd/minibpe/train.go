package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/go-mini-bpe/internal/corpus"
	"github.com/example/go-mini-bpe/internal/inspect"
	"github.com/example/go-mini-bpe/internal/tokenizer"
	"github.com/example/go-mini-bpe/internal/vocabfile"
)

func newTrainCmd() *cobra.Command {
	var inputs []string
	var captions []string
	var out string
	var sample string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Learn a vocabulary from corpus text and save it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			outPath := out
			if outPath == "" {
				outPath = cfg.Vocab.Path
			}

			tok := tokenizer.New(tokenizer.Options{VocabSize: cfg.Vocab.Size})

			added := 0
			for _, path := range inputs {
				err := corpus.EachLine(path, func(line string) error {
					added++
					return tok.Add(line)
				})
				if err != nil {
					return err
				}
			}
			for _, path := range captions {
				err := corpus.EachCaption(path, func(caption string) error {
					added++
					return tok.Add(caption)
				})
				if err != nil {
					return err
				}
			}
			if len(inputs) == 0 && len(captions) == 0 {
				text, err := readTextInput("", cmd.InOrStdin())
				if err != nil {
					return err
				}
				if strings.TrimSpace(text) == "" {
					return fmt.Errorf("no training text: provide --input, --captions or stdin")
				}
				if err := tok.Add(text); err != nil {
					return err
				}
				added++
			}

			slog.Info("training", "samples", added, "target_vocab_size", cfg.Vocab.Size)
			if err := tok.Build(); err != nil {
				return err
			}
			if err := vocabfile.Save(tok, outPath); err != nil {
				return err
			}
			slog.Info("saved vocabulary",
				"path", outPath,
				"merges", tok.MergeCount(),
				"vocab_size", tok.VocabSize(),
			)

			if sample != "" {
				ids, err := tok.Encode(sample)
				if err != nil {
					return err
				}
				inspect.WriteEncodingReport(cmd.OutOrStdout(), sample, ids, tok.MergeCount())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&inputs, "input", nil, "Plain text corpus file, one sample per line (repeatable)")
	cmd.Flags().StringArrayVar(&captions, "captions", nil, "JSON-lines caption corpus file (repeatable)")
	cmd.Flags().StringVar(&out, "out", "", "Output vocabulary path (defaults to --vocab-path)")
	cmd.Flags().StringVar(&sample, "sample", "", "Print an encoding report for this text after training")

	return cmd
}
