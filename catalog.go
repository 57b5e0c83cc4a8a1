package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// DatasetAll selects every dataset merged into one pool.
const DatasetAll = "ALL"

var ErrUnknownDataset = errors.New("unknown dataset")

// CatalogSource is what the session layer needs from the question
// catalog. Failures are propagated unchanged; the catalog never
// substitutes stale or placeholder data.
type CatalogSource interface {
	Datasets() ([]DatasetEntry, error)
	Questions(datasetID string) ([]Question, error)
}

// FileCatalog serves question datasets from a directory holding
// index.json plus one JSON file per dataset, with an in-memory cache per
// file. The cache lives until Invalidate; requesting a different dataset
// simply reads through to its own file.
type FileCatalog struct {
	dir string
	log *zap.Logger

	mu    sync.Mutex
	index *DatasetIndex
	files map[string][]Question
}

func NewFileCatalog(dir string, log *zap.Logger) *FileCatalog {
	return &FileCatalog{dir: dir, log: log, files: make(map[string][]Question)}
}

// Index returns the dataset index, loading it on first use.
func (c *FileCatalog) Index() (*DatasetIndex, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexLocked()
}

// Datasets lists the catalog entries from the index.
func (c *FileCatalog) Datasets() ([]DatasetEntry, error) {
	idx, err := c.Index()
	if err != nil {
		return nil, err
	}
	return idx.Datasets, nil
}

// Questions returns one dataset's questions, or every dataset merged
// when datasetID is "ALL" (or empty). The merged pool keeps only
// single-answer questions and drops repeated ids across files.
func (c *FileCatalog) Questions(datasetID string) ([]Question, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, err := c.indexLocked()
	if err != nil {
		return nil, err
	}

	if datasetID == "" || datasetID == DatasetAll {
		var all []Question
		seen := make(map[string]struct{})
		for _, ds := range idx.Datasets {
			qs, err := c.fileLocked(ds.File)
			if err != nil {
				return nil, err
			}
			for _, q := range qs {
				if q.Type != "" && q.Type != "single" {
					continue
				}
				if _, ok := seen[q.ID]; ok {
					continue
				}
				seen[q.ID] = struct{}{}
				all = append(all, q)
			}
		}
		return all, nil
	}

	for _, ds := range idx.Datasets {
		if ds.ID == datasetID {
			return c.fileLocked(ds.File)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, datasetID)
}

// Invalidate drops the cached index and dataset files, forcing the next
// read to hit the disk again.
func (c *FileCatalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = nil
	c.files = make(map[string][]Question)
}

func (c *FileCatalog) indexLocked() (*DatasetIndex, error) {
	if c.index != nil {
		return c.index, nil
	}
	raw, err := os.ReadFile(filepath.Join(c.dir, "index.json"))
	if err != nil {
		return nil, fmt.Errorf("read dataset index: %w", err)
	}
	var idx DatasetIndex
	if err := json.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("parse dataset index: %w", err)
	}
	if len(idx.Datasets) == 0 {
		return nil, errors.New("dataset index lists no datasets")
	}
	c.index = &idx
	return c.index, nil
}

func (c *FileCatalog) fileLocked(file string) ([]Question, error) {
	if qs, ok := c.files[file]; ok {
		return qs, nil
	}
	raw, err := os.ReadFile(filepath.Join(c.dir, file))
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", file, err)
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", file, err)
	}
	c.files[file] = qs
	c.log.Info("dataset loaded", zap.String("file", file), zap.Int("questions", len(qs)))
	return qs, nil
}

// Chapters returns the chapter filter choices for a pool: "ALL" followed
// by the distinct chapters in sorted order.
func Chapters(qs []Question) []string {
	set := make(map[string]struct{})
	for _, q := range qs {
		if q.Chapter != "" {
			set[q.Chapter] = struct{}{}
		}
	}
	out := make([]string, 0, len(set)+1)
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return append([]string{"ALL"}, out...)
}
