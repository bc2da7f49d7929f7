// Package testutil provides shared fixture helpers for tests that need
// corpus files on disk.
//
// Each writer returns the path of the created file and fails the test on
// any I/O error, so callers can use the result inline:
//
//	func TestMyReader(t *testing.T) {
//	    path := testutil.WriteCaptionsFile(t, t.TempDir(), "train.jsonl", [][]string{
//	        {"A dog runs.", "A dog is running."},
//	    })
//	    ...
//	}
package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteCaptionsFile writes a JSON-lines caption fixture with one record
// per element of records, each carrying that element's captions. Names
// ending in .gz are written gzip-compressed.
func WriteCaptionsFile(tb testing.TB, dir, name string, records [][]string) string {
	tb.Helper()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, captions := range records {
		rec := struct {
			Captions []string `json:"captions"`
		}{Captions: captions}
		if err := enc.Encode(rec); err != nil {
			tb.Fatalf("encode caption record: %v", err)
		}
	}

	return writeFixture(tb, dir, name, buf.Bytes())
}

// WriteTextFile writes a plain text fixture with one line per element.
// Names ending in .gz are written gzip-compressed.
func WriteTextFile(tb testing.TB, dir, name string, lines []string) string {
	tb.Helper()

	data := []byte(strings.Join(lines, "\n") + "\n")
	return writeFixture(tb, dir, name, data)
}

// WriteRawFile writes arbitrary bytes, gzip-compressed for .gz names.
func WriteRawFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	return writeFixture(tb, dir, name, data)
}

func writeFixture(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	if strings.HasSuffix(name, ".gz") {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		if _, err := gz.Write(data); err != nil {
			tb.Fatalf("gzip fixture %s: %v", name, err)
		}
		if err := gz.Close(); err != nil {
			tb.Fatalf("close gzip fixture %s: %v", name, err)
		}
		data = buf.Bytes()
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("create fixture dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
