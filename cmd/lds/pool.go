package main

import (
	"github.com/revelaction/lds/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool opens the SQLite file of a command at most once.
type Pool struct {
	p    *sqlitex.Pool
	path string
}

// Open returns the pool of path and makes sure the schemas exist.
func (p *Pool) Open(path string, schemas ...string) (*sqlitex.Pool, error) {
	if p.p == nil {
		pool, err := zombiezen.NewPool(path)
		if err != nil {
			return nil, err
		}
		p.p = pool
		p.path = path
	}

	if err := zombiezen.CreateSchemas(p.p, schemas...); err != nil {
		return nil, err
	}
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}
