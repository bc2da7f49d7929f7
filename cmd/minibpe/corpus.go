package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/example/go-mini-bpe/internal/corpus"
)

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Fetch and summarize training corpora",
	}

	cmd.AddCommand(newCorpusFetchCmd())
	cmd.AddCommand(newCorpusStatsCmd())

	return cmd
}

func newCorpusFetchCmd() *cobra.Command {
	var repo string
	var file string
	var outDir string
	var token string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a caption dataset from Hugging Face",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if repo == "" {
				repo = cfg.Corpus.Repo
			}
			if outDir == "" {
				outDir = cfg.Corpus.Dir
			}
			if token == "" {
				token = os.Getenv("HF_TOKEN")
			}

			err = corpus.Fetch(corpus.FetchOptions{
				Repo:   repo,
				File:   file,
				OutDir: outDir,
				Token:  token,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("corpus fetch failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Dataset repository (defaults to --corpus-repo)")
	cmd.Flags().StringVar(&file, "file", "", "Fetch a single file instead of the pinned manifest")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Download directory (defaults to --corpus-dir)")
	cmd.Flags().StringVar(&token, "token", "", "Hugging Face token (falls back to HF_TOKEN env var)")

	return cmd
}

func newCorpusStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <captions-file> ...",
		Short: "Summarize caption files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"FILE", "RECORDS", "CAPTIONS", "TEXT BYTES"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")

			for _, path := range args {
				stats, err := corpus.CaptionStats(path)
				if err != nil {
					return err
				}
				table.Append([]string{
					path,
					strconv.Itoa(stats.Records),
					strconv.Itoa(stats.Captions),
					strconv.FormatInt(stats.Bytes, 10),
				})
			}

			table.Render()
			return nil
		},
	}

	return cmd
}
