package main

import (
	"fmt"
	"os"

	"github.com/revelaction/lds/storage"
	"github.com/revelaction/lds/storage/filesystem"
	"github.com/revelaction/lds/storage/sqlite/zombiezen"
)

// NewDocRepository returns a filesystem repository if path is a folder, a
// SQLite repository otherwise.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path, zombiezen.DocsSchema)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// NewReportRepository returns the SQLite report store at path, creating the
// file if needed.
func NewReportRepository(p *Pool, path string) (storage.ReportWriter, error) {
	pool, err := p.Open(path, zombiezen.ReportSchema)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewReportStore(pool), nil
}
