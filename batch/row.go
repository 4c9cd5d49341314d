package batch

// RowType is the first column of the report.
type RowType string

const (
	SentenceRow RowType = "sentence"
	ClauseRow   RowType = "clause"
	SegmentRow  RowType = "segment"
)

// None marks an empty clause or segment id.
const None = -1

// Header is the report header.
var Header = []string{"type", "sentence_id", "clause_id", "segment_id", "text"}

// Row is one line of the report. ClauseId and SegmentId are None when they
// do not apply to the row type.
type Row struct {
	Type       RowType `json:"type"`
	SentenceId int     `json:"sentence_id"`
	ClauseId   int     `json:"clause_id"`
	SegmentId  int     `json:"segment_id"`
	Text       string  `json:"text"`
}

// Rows turns results into report rows. Skipped sentences produce no row. A
// sentence row is followed by each of its clause rows, each followed by its
// segment rows. Segment ids run across the whole run; clause ids restart at
// zero for every sentence unless Options.GlobalClauseIds is set.
func (d *Driver) Rows(results []Result) []Row {
	var rows []Row

	for _, res := range results {
		if res.Status != Segmented {
			continue
		}

		rows = append(rows, Row{
			Type:       SentenceRow,
			SentenceId: res.SentenceId,
			ClauseId:   None,
			SegmentId:  None,
			Text:       res.Tree.Sentence(),
		})

		if !d.opts.GlobalClauseIds {
			d.nextClause = 0
		}

		for i, c := range res.Clauses {
			clauseId := d.nextClause
			d.nextClause++

			rows = append(rows, Row{
				Type:       ClauseRow,
				SentenceId: res.SentenceId,
				ClauseId:   clauseId,
				SegmentId:  None,
				Text:       res.Tree.Surface(c.Ids),
			})

			for _, s := range res.Segments[i] {
				rows = append(rows, Row{
					Type:       SegmentRow,
					SentenceId: res.SentenceId,
					ClauseId:   clauseId,
					SegmentId:  d.nextSegment,
					Text:       res.Tree.Surface(s),
				})
				d.nextSegment++
			}
		}
	}

	return rows
}
