package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	sent "github.com/revelaction/lds/sentence"
	"github.com/revelaction/lds/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, sent.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT sent_index, meta, text, data FROM sentences WHERE doc_id = ? ORDER BY sent_index", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			s := sent.Sentence{
				Id:    stmt.ColumnInt(0),
				DocId: id,
				Meta:  stmt.ColumnText(1),
				Text:  stmt.ColumnText(2),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &s.Tokens); err != nil {
				return fmt.Errorf("JSON decoding error in doc %d sentence %d: %w", id, s.Id, err)
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// Write inserts the doc and its sentences. A doc with the same title is
// replaced.
func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM docs WHERE title = ?", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title},
	})
	if err != nil {
		return fmt.Errorf("failed to replace doc: %w", err)
	}

	err = sqlitex.Execute(conn, "INSERT INTO docs (title) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for i, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence.Tokens)
		if marshalErr != nil {
			err = marshalErr
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, sent_index, meta, text, data) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, i, sentence.Meta, sentence.Text, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return nil
}
