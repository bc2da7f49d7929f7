package corpus

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single input line; caption records are a few
// hundred bytes, so anything near this limit is a malformed file.
const maxLineBytes = 1 << 20

// captionRecord mirrors one dataset row: an image entry carrying its
// human-written captions. Other fields of the row are ignored.
type captionRecord struct {
	Captions []string `json:"captions"`
}

// Stats summarizes a caption file.
type Stats struct {
	Records  int
	Captions int
	Bytes    int64
}

// EachCaption streams every caption in the JSON-lines file at path,
// calling fn once per caption in file order. Files ending in .gz are
// decompressed transparently. Captions are trimmed of surrounding
// whitespace and empty ones are skipped. Iteration stops at the first
// error fn returns.
func EachCaption(path string, fn func(caption string) error) error {
	return withReader(path, func(r io.Reader) error {
		return scanLines(path, r, func(lineNo int, line []byte) error {
			var rec captionRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return fmt.Errorf("corpus: %s line %d: %w", path, lineNo, err)
			}
			for _, c := range rec.Captions {
				c = strings.TrimSpace(c)
				if c == "" {
					continue
				}
				if err := fn(c); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// ReadCaptions collects every caption in the file at path.
func ReadCaptions(path string) ([]string, error) {
	var captions []string
	err := EachCaption(path, func(c string) error {
		captions = append(captions, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return captions, nil
}

// EachLine streams the non-empty, whitespace-trimmed lines of a plain
// text file at path, for corpora that are not caption datasets. Files
// ending in .gz are decompressed transparently.
func EachLine(path string, fn func(line string) error) error {
	return withReader(path, func(r io.Reader) error {
		return scanLines(path, r, func(_ int, line []byte) error {
			return fn(string(line))
		})
	})
}

// ReadLines collects every non-empty line in the file at path.
func ReadLines(path string) ([]string, error) {
	var lines []string
	err := EachLine(path, func(l string) error {
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// CaptionStats walks the caption file at path and reports record,
// caption and text byte totals.
func CaptionStats(path string) (Stats, error) {
	var stats Stats
	err := withReader(path, func(r io.Reader) error {
		return scanLines(path, r, func(lineNo int, line []byte) error {
			var rec captionRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return fmt.Errorf("corpus: %s line %d: %w", path, lineNo, err)
			}
			stats.Records++
			for _, c := range rec.Captions {
				c = strings.TrimSpace(c)
				if c == "" {
					continue
				}
				stats.Captions++
				stats.Bytes += int64(len(c))
			}
			return nil
		})
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// withReader opens path, layering gzip decompression for .gz files, and
// hands the reader to fn.
func withReader(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("corpus: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return fn(r)
}

// scanLines feeds fn each non-empty trimmed line with its 1-based number.
func scanLines(path string, r io.Reader, fn func(lineNo int, line []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("corpus: read %s: %w", path, err)
	}
	return nil
}
