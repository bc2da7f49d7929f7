package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/go-mini-bpe/internal/inspect"
	"github.com/example/go-mini-bpe/internal/tokenizer"
)

func newInspectCmd() *cobra.Command {
	var text string
	var top int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the bytes and pair statistics of a text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readTextInput(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			inspect.WriteByteReport(out, input)
			fmt.Fprintln(out)
			inspect.WritePairCounts(out, tokenizer.CountPairsInText(input, nil), top)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to inspect (if empty, read from stdin)")
	cmd.Flags().IntVar(&top, "top", 10, "Show at most this many pairs (0 = all)")

	return cmd
}
