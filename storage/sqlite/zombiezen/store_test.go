package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/lds/batch"
	sent "github.com/revelaction/lds/sentence"
)

func newTestPool(t *testing.T) *sqlitex.Pool {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "lds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, CreateSchemas(pool, DocsSchema, ReportSchema))
	return pool
}

func testDoc(title string) sent.Doc {
	return sent.Doc{
		Title: title,
		Sentences: []sent.Sentence{
			{
				Meta: "1",
				Text: "Přišel domů.",
				Tokens: []sent.Token{
					{Id: 1, Text: "Přišel", Lemma: "přijít", Pos: "VERB", Tag: "VpYS---XR-AA---", Head: sent.RootGovernor(), Dep: "root"},
					{Id: 2, Text: "domů", Lemma: "domů", Pos: "ADV", Tag: "Db-------------", Head: sent.GovernedBy(1), Dep: "advmod"},
				},
			},
			{
				Meta: "2",
				Tokens: []sent.Token{
					{Id: 1, Text: "Hm", Pos: "INTJ", Head: sent.UnattachedGovernor()},
				},
			},
		},
	}
}

func TestDocStoreWriteRead(t *testing.T) {
	store := NewDocStore(newTestPool(t))

	require.NoError(t, store.Write(testDoc("a.conllu")))
	require.NoError(t, store.Write(testDoc("b.conllu")))

	docs, err := store.List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.conllu", docs[0].Title)

	doc, err := store.Read(docs[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "b.conllu", doc.Title)
	require.Len(t, doc.Sentences, 2)
	assert.Equal(t, 1, doc.Sentences[1].Id)
	assert.Equal(t, "Přišel domů.", doc.Sentences[0].Text)
	assert.Equal(t, testDoc("").Sentences[0].Tokens, doc.Sentences[0].Tokens)
	assert.True(t, doc.Sentences[1].Tokens[0].Head.IsUnattached())

	_, err = store.Read(999)
	assert.Error(t, err)
}

func TestDocStoreReplace(t *testing.T) {
	store := NewDocStore(newTestPool(t))

	require.NoError(t, store.Write(testDoc("a.conllu")))
	require.NoError(t, store.Write(testDoc("a.conllu")))

	docs, err := store.List()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc, err := store.Read(docs[0].Id)
	require.NoError(t, err)
	assert.Len(t, doc.Sentences, 2)
}

func TestReportStore(t *testing.T) {
	store := NewReportStore(newTestPool(t))

	rows := []batch.Row{
		{Type: batch.SentenceRow, SentenceId: 0, ClauseId: batch.None, SegmentId: batch.None, Text: "Přišel domů"},
		{Type: batch.ClauseRow, SentenceId: 0, ClauseId: 0, SegmentId: batch.None, Text: "Přišel domů"},
		{Type: batch.SegmentRow, SentenceId: 0, ClauseId: 0, SegmentId: 0, Text: "Přišel domů"},
	}

	require.NoError(t, store.WriteReport("syntactic", rows))
	require.NoError(t, store.WriteReport("syntactic", rows))
	require.NoError(t, store.WriteReport("adjacent", rows[:1]))

	got, err := store.ReadReport("syntactic")
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	got, err = store.ReadReport("adjacent")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = store.ReadReport("missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}
