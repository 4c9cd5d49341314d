package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/revelaction/lds/batch"
)

const (
	FormatTSV  = "tsv"
	FormatJSON = "json"

	DefaultFormat = FormatTSV

	// none is written for clause and segment ids that do not apply.
	none = "None"
)

func SupportedFormats() []string {
	return []string{FormatTSV, FormatJSON}
}

// RowWriter writes report rows. Flush must be called once all rows are
// written.
type RowWriter interface {
	Write(row batch.Row) error
	Flush() error
}

// NewRowWriter returns the RowWriter for the given format.
func NewRowWriter(format string, w io.Writer) (RowWriter, error) {
	switch format {
	case FormatTSV:
		return NewTSVWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, allowed values are %v", format, SupportedFormats())
}

// TSVWriter writes the tab separated report:
//
//	type	sentence_id	clause_id	segment_id	text
//
// with "None" for the ids that do not apply to the row type.
type TSVWriter struct {
	w      *csv.Writer
	header bool
}

func NewTSVWriter(w io.Writer) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVWriter{w: cw}
}

func (t *TSVWriter) writeHeader() error {
	if t.header {
		return nil
	}
	t.header = true
	return t.w.Write(batch.Header)
}

func (t *TSVWriter) Write(row batch.Row) error {
	if err := t.writeHeader(); err != nil {
		return err
	}
	return t.w.Write(Record(row))
}

func (t *TSVWriter) Flush() error {
	if err := t.writeHeader(); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

// Record returns the columns of a report row.
func Record(row batch.Row) []string {
	return []string{
		string(row.Type),
		strconv.Itoa(row.SentenceId),
		optional(row.ClauseId),
		optional(row.SegmentId),
		row.Text,
	}
}

func optional(id int) string {
	if id == batch.None {
		return none
	}
	return strconv.Itoa(id)
}

// JSONWriter collects the rows and writes them as a JSON array on Flush.
type JSONWriter struct {
	W    io.Writer
	rows []jsonRow
}

// jsonRow uses null for the ids that do not apply.
type jsonRow struct {
	Type       batch.RowType `json:"type"`
	SentenceId int           `json:"sentence_id"`
	ClauseId   *int          `json:"clause_id"`
	SegmentId  *int          `json:"segment_id"`
	Text       string        `json:"text"`
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{W: w, rows: []jsonRow{}}
}

func (j *JSONWriter) Write(row batch.Row) error {
	jr := jsonRow{Type: row.Type, SentenceId: row.SentenceId, Text: row.Text}
	if row.ClauseId != batch.None {
		id := row.ClauseId
		jr.ClauseId = &id
	}
	if row.SegmentId != batch.None {
		id := row.SegmentId
		jr.SegmentId = &id
	}
	j.rows = append(j.rows, jr)
	return nil
}

func (j *JSONWriter) Flush() error {
	return json.NewEncoder(j.W).Encode(j.rows)
}

// compile-time interface check
var (
	_ RowWriter = (*TSVWriter)(nil)
	_ RowWriter = (*JSONWriter)(nil)
)
