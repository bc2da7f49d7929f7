package testutil

import (
	"encoding/binary"
	"testing"
)

// AssertValidVocabFile checks that data is a structurally valid vocabulary
// file as the trainer writes it: version-1 header, a merge count matched by
// complete 12-byte records, and merge symbols allocated sequentially from
// 256 in rank order.
func AssertValidVocabFile(tb testing.TB, data []byte) {
	tb.Helper()

	if len(data) < 8 {
		tb.Fatalf("vocab data too short: %d bytes", len(data))
	}

	version := binary.LittleEndian.Uint32(data[0:4])
	if version != 1 {
		tb.Fatalf("vocab: expected format version 1, got %d", version)
	}

	count := binary.LittleEndian.Uint32(data[4:8])
	records := uint32(len(data)-8) / 12
	if records < count {
		tb.Fatalf("vocab: header declares %d merges, data holds %d complete records", count, records)
	}

	for i := uint32(0); i < count; i++ {
		off := 8 + int(i)*12
		newSymbol := binary.LittleEndian.Uint32(data[off+8 : off+12])
		if want := 256 + i; newSymbol != want {
			tb.Fatalf("vocab: merge %d introduces symbol %d, want %d", i, newSymbol, want)
		}
	}
}

// AssertMergeCountInRange asserts that the merge count recorded in the
// vocabulary file header falls within [min, max].
func AssertMergeCountInRange(tb testing.TB, data []byte, min, max uint32) {
	tb.Helper()

	if len(data) < 8 {
		tb.Fatalf("vocab data too short: %d bytes", len(data))
	}

	count := binary.LittleEndian.Uint32(data[4:8])
	if count < min || count > max {
		tb.Fatalf("vocab merge count %d out of expected range [%d, %d]", count, min, max)
	}
}
