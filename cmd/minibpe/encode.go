package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/go-mini-bpe/internal/inspect"
	"github.com/example/go-mini-bpe/internal/vocabfile"
)

func newEncodeCmd() *cobra.Command {
	var vocabPath string
	var text string
	var stats bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text into token ids with a saved vocabulary",
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

			input, err := readTextInput(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ids, err := tok.Encode(input)
			if err != nil {
				return err
			}

			var sb strings.Builder
			for i, id := range ids {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.FormatUint(uint64(id), 10))
			}
			fmt.Fprintln(cmd.OutOrStdout(), sb.String())

			if stats {
				inspect.WriteEncodingReport(cmd.ErrOrStderr(), input, ids, tok.MergeCount())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "Vocabulary file (defaults to --vocab-path)")
	cmd.Flags().StringVar(&text, "text", "", "Text to encode (if empty, read from stdin)")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print an encoding report to stderr")

	return cmd
}
