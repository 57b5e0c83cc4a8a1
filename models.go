package main

import (
	"time"
)

// --- Catalog ---

// Question is a single multiple-choice item as it appears in the dataset
// files. Questions are owned by the catalog files and never written back.
type Question struct {
	ID            string   `json:"id"`
	Subject       string   `json:"subject"`
	Year          *int     `json:"year"`
	Chapter       string   `json:"chapter"`
	Type          string   `json:"type"` // only "single" is served
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"` // 4 entries
	AnswerIndex   int      `json:"answer_index"`
	Explanation   string   `json:"explanation"`
	Source        string   `json:"source"`
	SourceDisplay string   `json:"source_display,omitempty"`
	Assets        []Asset  `json:"assets,omitempty"`
}

type Asset struct {
	Type string `json:"type"` // "image"
	Src  string `json:"src"`
	Alt  string `json:"alt,omitempty"`
}

// DatasetEntry is one row of the catalog index.
type DatasetEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	File  string `json:"file"`
}

type DatasetIndex struct {
	Datasets       []DatasetEntry `json:"datasets"`
	DefaultDataset string         `json:"default_dataset"`
}

// --- Persistence ---

// KVEntry backs the durable key-value store that holds all learner
// progress (wrong set, subject counters, daily buckets, perfect streak).
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// --- Session ---

// QuizSession is the in-memory state of one practice round. It is
// discarded on Finalize; only the answer map survives, mirrored into
// ephemeral storage for the results view.
type QuizSession struct {
	ID          string
	QuestionIDs []string
	Answers     map[string]int // question id -> selected option index
	StartedAt   time.Time

	questions map[string]Question
}
