// Package inspect renders human-readable reports about texts, pair
// statistics and encodings. It backs the CLI's debugging surface; the
// tokenizer core never depends on it.
package inspect

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"

	"github.com/example/go-mini-bpe/internal/tokenizer"
)

// WriteByteReport prints text alongside its rune count and the raw UTF-8
// bytes training would start from.
func WriteByteReport(w io.Writer, text string) {
	hexBytes := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		hexBytes[i] = fmt.Sprintf("%02x", text[i])
	}

	table := newTable(w, nil)
	table.SetColWidth(100)
	table.AppendBulk([][]string{
		{"TEXT", strconv.Quote(text)},
		{"RUNES", strconv.Itoa(utf8.RuneCountInString(text))},
		{"BYTES", strconv.Itoa(len(text))},
		{"HEX", strings.Join(hexBytes, " ")},
	})
	table.Render()
}

// WritePairCounts prints the most frequent adjacent pairs, highest count
// first with ties in symbol order. A limit of zero or less prints all
// pairs. Pairs of byte symbols also show the text they spell.
func WritePairCounts(w io.Writer, counts map[tokenizer.Pair]int, limit int) {
	type pairCount struct {
		pair tokenizer.Pair
		n    int
	}

	rows := make([]pairCount, 0, len(counts))
	for p, n := range counts {
		rows = append(rows, pairCount{pair: p, n: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n != rows[j].n {
			return rows[i].n > rows[j].n
		}
		if rows[i].pair.Left != rows[j].pair.Left {
			return rows[i].pair.Left < rows[j].pair.Left
		}
		return rows[i].pair.Right < rows[j].pair.Right
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	table := newTable(w, []string{"LEFT", "RIGHT", "TEXT", "COUNT"})
	for _, row := range rows {
		table.Append([]string{
			strconv.FormatUint(uint64(row.pair.Left), 10),
			strconv.FormatUint(uint64(row.pair.Right), 10),
			pairText(row.pair),
			strconv.Itoa(row.n),
		})
	}
	table.Render()
}

// WriteEncodingReport prints how text shrank under its encoding.
func WriteEncodingReport(w io.Writer, text string, tokens []tokenizer.Symbol, mergeCount int) {
	compression := "-"
	if len(tokens) > 0 {
		compression = fmt.Sprintf("%.2fx", float64(len(text))/float64(len(tokens)))
	}

	table := newTable(w, nil)
	table.SetColWidth(100)
	table.AppendBulk([][]string{
		{"TEXT", strconv.Quote(text)},
		{"RUNES", strconv.Itoa(utf8.RuneCountInString(text))},
		{"BYTES", strconv.Itoa(len(text))},
		{"TOKENS", strconv.Itoa(len(tokens))},
		{"COMPRESSION", compression},
		{"MERGES", strconv.Itoa(mergeCount)},
	})
	table.Render()
}

// WriteMergeTable prints the first merges of a built tokenizer in rank
// order, each with the text its symbol expands to. A limit of zero or
// less prints every merge.
func WriteMergeTable(w io.Writer, tok *tokenizer.Tokenizer, limit int) {
	merges := tok.Merges()
	if limit > 0 && len(merges) > limit {
		merges = merges[:limit]
	}

	table := newTable(w, []string{"RANK", "LEFT", "RIGHT", "SYMBOL", "TEXT"})
	for rank, m := range merges {
		text := ""
		if expansion, err := tok.Decode([]tokenizer.Symbol{m.NewSymbol}); err == nil {
			text = strconv.Quote(expansion)
		}
		table.Append([]string{
			strconv.Itoa(rank),
			strconv.FormatUint(uint64(m.Pair.Left), 10),
			strconv.FormatUint(uint64(m.Pair.Right), 10),
			strconv.FormatUint(uint64(m.NewSymbol), 10),
			text,
		})
	}
	table.Render()
}

// pairText spells out the bytes of a base pair; pairs involving merge
// symbols have no fixed two-byte spelling at this level.
func pairText(p tokenizer.Pair) string {
	if p.Left >= tokenizer.ByteSymbols || p.Right >= tokenizer.ByteSymbols {
		return ""
	}
	return strconv.Quote(string([]byte{byte(p.Left), byte(p.Right)}))
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	if len(headers) > 0 {
		table.SetHeader(headers)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	}
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}
