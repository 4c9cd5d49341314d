package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/lds/conllu"
	sent "github.com/revelaction/lds/sentence"
	"github.com/revelaction/lds/storage"
)

const Ext = ".conllu"

// DocStore is a folder of CoNLL-U files, one Doc per file. Doc ids are the
// positions of the files in name order.
type DocStore struct {
	docDir string

	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore lists the CoNLL-U files of docDir. The files are read lazily.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != Ext {
			continue
		}
		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: file.Name(),
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc := h.docs[id]
	sentences, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return sent.Doc{}, err
	}

	for i := range sentences {
		sentences[i].DocId = id
	}
	doc.Sentences = sentences
	return doc, nil
}

// Write stores the doc as <title>.conllu. The doc is appended to the list if
// its title is new.
func (h *DocStore) Write(doc sent.Doc) error {
	name := doc.Title
	if filepath.Ext(name) != Ext {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + Ext
	}

	f, err := os.Create(filepath.Join(h.docDir, name))
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if err := conllu.Write(f, doc.Sentences); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	for _, d := range h.docs {
		if d.Title == name {
			return nil
		}
	}
	h.docs = append(h.docs, sent.Doc{Id: len(h.docs), Title: name})
	return nil
}

// ReadDoc reads the sentences of a CoNLL-U file.
func ReadDoc(path string) ([]sent.Sentence, error) {
	return conllu.ReadFile(path)
}
