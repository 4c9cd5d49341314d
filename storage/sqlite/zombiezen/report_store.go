package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ReportStore keeps segmentation runs in the report table. Clause and
// segment ids that do not apply are stored as NULL.
type ReportStore struct {
	pool *sqlitex.Pool
}

var (
	_ storage.ReportWriter = (*ReportStore)(nil)
	_ storage.ReportReader = (*ReportStore)(nil)
)

func NewReportStore(pool *sqlitex.Pool) *ReportStore {
	return &ReportStore{pool: pool}
}

func (h *ReportStore) WriteReport(run string, rows []batch.Row) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "DELETE FROM report WHERE run = ?", &sqlitex.ExecOptions{
		Args: []interface{}{run},
	})
	if err != nil {
		return fmt.Errorf("failed to clear run %s: %w", run, err)
	}

	for _, row := range rows {
		err = sqlitex.Execute(conn, "INSERT INTO report (run, type, sentence_id, clause_id, segment_id, text) VALUES (?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{run, string(row.Type), row.SentenceId, nullable(row.ClauseId), nullable(row.SegmentId), row.Text},
		})
		if err != nil {
			return fmt.Errorf("failed to insert report row: %w", err)
		}
	}

	return nil
}

func (h *ReportStore) ReadReport(run string) ([]batch.Row, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var rows []batch.Row
	err = sqlitex.Execute(conn, "SELECT type, sentence_id, clause_id, segment_id, text FROM report WHERE run = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{run},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, batch.Row{
				Type:       batch.RowType(stmt.ColumnText(0)),
				SentenceId: stmt.ColumnInt(1),
				ClauseId:   columnId(stmt, 2),
				SegmentId:  columnId(stmt, 3),
				Text:       stmt.ColumnText(4),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func nullable(id int) interface{} {
	if id == batch.None {
		return nil
	}
	return id
}

func columnId(stmt *sqlite.Stmt, col int) int {
	if stmt.ColumnType(col) == sqlite.TypeNull {
		return batch.None
	}
	return stmt.ColumnInt(col)
}
