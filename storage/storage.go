package storage

import (
	"github.com/revelaction/lds/batch"
	sent "github.com/revelaction/lds/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title) of documents, ordered by Id.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// ReportWriter persists the rows of a segmentation run.
type ReportWriter interface {
	// WriteReport stores rows under the given run name, replacing the rows
	// previously stored under the same name.
	WriteReport(run string, rows []batch.Row) error
}

// ReportReader reads back a stored segmentation run.
type ReportReader interface {
	ReadReport(run string) ([]batch.Row, error)
}
