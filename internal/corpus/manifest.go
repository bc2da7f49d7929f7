// Package corpus acquires and reads the text corpora that tokenizer
// training consumes: pinned dataset downloads from the Hugging Face hub,
// JSON-lines caption files and plain text files.
package corpus

import "fmt"

// Manifest lists the files a dataset download consists of.
type Manifest struct {
	Repo  string        `json:"repo"`
	Files []DatasetFile `json:"files"`
}

// DatasetFile identifies one file within a dataset repository.
type DatasetFile struct {
	Filename string `json:"filename"`
	Revision string `json:"revision"`
	SHA256   string `json:"sha256"`
}

// PinnedManifest returns the known file set for a supported dataset
// repository.
func PinnedManifest(repo string) (Manifest, error) {
	switch repo {
	case "phiyodr/coco2017":
		return Manifest{
			Repo: repo,
			Files: []DatasetFile{
				{
					Filename: "data/train.jsonl.gz",
					Revision: "main",
					// The checksum is resolved from hub metadata at fetch
					// time and then persisted into a local lock manifest.
					SHA256: "",
				},
			},
		}, nil
	default:
		return Manifest{}, fmt.Errorf("corpus: no pinned manifest for repo %q", repo)
	}
}
