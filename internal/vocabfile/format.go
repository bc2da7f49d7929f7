// Package vocabfile persists learned merge lists in a compact binary
// format so a trained tokenizer can be reconstructed without its corpus.
//
// The layout is little-endian throughout:
//
//	offset 0: uint32 format version (currently 1)
//	offset 4: uint32 merge count N
//	offset 8: N records of { uint32 left, uint32 right, uint32 new symbol }
//
// Records appear in rank order, so a record's position in the file is the
// rank the tokenizer replays it at.
package vocabfile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/example/go-mini-bpe/internal/tokenizer"
)

const (
	// FormatVersion is the only file version this package reads and writes.
	FormatVersion uint32 = 1

	headerSize = 8
	recordSize = 12
)

// ErrTruncated reports a file that ends before the data its header
// declares. Errors from Parse wrap it together with what was being read
// when the data ran out.
var ErrTruncated = errors.New("vocabfile: truncated data")

// UnsupportedVersionError reports a file whose declared format version
// this package cannot read.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("vocabfile: unsupported format version %d (want %d)", e.Version, FormatVersion)
}

// Encode serializes merges in rank order.
func Encode(merges []tokenizer.Merge) []byte {
	out := make([]byte, headerSize+recordSize*len(merges))
	binary.LittleEndian.PutUint32(out[0:], FormatVersion)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(merges)))

	off := headerSize
	for _, m := range merges {
		binary.LittleEndian.PutUint32(out[off:], uint32(m.Pair.Left))
		binary.LittleEndian.PutUint32(out[off+4:], uint32(m.Pair.Right))
		binary.LittleEndian.PutUint32(out[off+8:], uint32(m.NewSymbol))
		off += recordSize
	}
	return out
}

// Parse decodes a serialized merge list. It returns an
// *UnsupportedVersionError for any version other than FormatVersion and
// an error wrapping ErrTruncated when data ends before the declared
// record count. Bytes past the declared records are ignored.
func Parse(data []byte) ([]tokenizer.Merge, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("vocabfile: version field: %w", ErrTruncated)
	}
	version := binary.LittleEndian.Uint32(data)
	if version != FormatVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("vocabfile: merge count field: %w", ErrTruncated)
	}
	count := binary.LittleEndian.Uint32(data[4:])

	if uint64(len(data)-headerSize) < uint64(count)*recordSize {
		complete := (len(data) - headerSize) / recordSize
		return nil, fmt.Errorf(
			"vocabfile: header declares %d merges, data holds %d complete records: %w",
			count, complete, ErrTruncated,
		)
	}

	merges := make([]tokenizer.Merge, 0, count)
	off := headerSize
	for i := uint32(0); i < count; i++ {
		merges = append(merges, tokenizer.Merge{
			Pair: tokenizer.Pair{
				Left:  tokenizer.Symbol(binary.LittleEndian.Uint32(data[off:])),
				Right: tokenizer.Symbol(binary.LittleEndian.Uint32(data[off+4:])),
			},
			NewSymbol: tokenizer.Symbol(binary.LittleEndian.Uint32(data[off+8:])),
		})
		off += recordSize
	}
	return merges, nil
}
