package corpus

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/example/go-mini-bpe/internal/testutil"
)

func TestEachCaption_ReadsAllInOrder(t *testing.T) {
	path := testutil.WriteCaptionsFile(t, t.TempDir(), "train.jsonl", [][]string{
		{"A dog runs.", "A dog is running."},
		{"Two cats sleep."},
	})

	var got []string
	err := EachCaption(path, func(c string) error {
		got = append(got, c)
		return nil
	})
	if err != nil {
		t.Fatalf("EachCaption: %v", err)
	}

	want := []string{"A dog runs.", "A dog is running.", "Two cats sleep."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("captions = %q; want %q", got, want)
	}
}

func TestEachCaption_Gzip(t *testing.T) {
	path := testutil.WriteCaptionsFile(t, t.TempDir(), "train.jsonl.gz", [][]string{
		{"Compressed caption."},
	})

	got, err := ReadCaptions(path)
	if err != nil {
		t.Fatalf("ReadCaptions: %v", err)
	}
	if want := []string{"Compressed caption."}; !reflect.DeepEqual(got, want) {
		t.Fatalf("captions = %q; want %q", got, want)
	}
}

func TestEachCaption_TrimsAndSkipsEmpty(t *testing.T) {
	path := testutil.WriteCaptionsFile(t, t.TempDir(), "train.jsonl", [][]string{
		{"  padded caption  ", "", "   "},
	})

	got, err := ReadCaptions(path)
	if err != nil {
		t.Fatalf("ReadCaptions: %v", err)
	}
	if want := []string{"padded caption"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("captions = %q; want %q", got, want)
	}
}

func TestEachCaption_BadJSON(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteTextFile(t, dir, "broken.jsonl", []string{
		`{"captions": ["fine"]}`,
		`{"captions": [`,
	})

	err := EachCaption(path, func(string) error { return nil })
	if err == nil {
		t.Fatal("expected error for malformed JSON record")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q does not name the offending line", err)
	}
}

func TestEachCaption_StopsOnCallbackError(t *testing.T) {
	path := testutil.WriteCaptionsFile(t, t.TempDir(), "train.jsonl", [][]string{
		{"first"}, {"second"}, {"third"},
	})

	boom := errors.New("boom")
	var seen int
	err := EachCaption(path, func(string) error {
		seen++
		if seen == 2 {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("EachCaption = %v; want callback error", err)
	}
	if seen != 2 {
		t.Fatalf("callback ran %d times; want 2", seen)
	}
}

func TestEachCaption_MissingFile(t *testing.T) {
	err := EachCaption(filepath.Join(t.TempDir(), "absent.jsonl"), func(string) error { return nil })
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("EachCaption = %v; want fs.ErrNotExist", err)
	}
}

func TestReadLines_SkipsBlankAndTrims(t *testing.T) {
	path := testutil.WriteTextFile(t, t.TempDir(), "corpus.txt", []string{
		"Hello world!",
		"",
		"   ",
		"  This is a test.  ",
	})

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}

	want := []string{"Hello world!", "This is a test."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q; want %q", got, want)
	}
}

func TestReadLines_Gzip(t *testing.T) {
	path := testutil.WriteTextFile(t, t.TempDir(), "corpus.txt.gz", []string{"one", "two"})

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if want := []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q; want %q", got, want)
	}
}

func TestCaptionStats(t *testing.T) {
	path := testutil.WriteCaptionsFile(t, t.TempDir(), "train.jsonl", [][]string{
		{"abc", "de"},
		{"fgh", ""},
	})

	stats, err := CaptionStats(path)
	if err != nil {
		t.Fatalf("CaptionStats: %v", err)
	}

	want := Stats{Records: 2, Captions: 3, Bytes: 8}
	if stats != want {
		t.Fatalf("CaptionStats = %+v; want %+v", stats, want)
	}
}
