package sentence

import (
	"strings"
)

// Coarse (universal) part-of-speech tags the segmenter cares about.
const (
	PosAux   = "AUX"
	PosSconj = "SCONJ"
	PosPunct = "PUNCT"
)

type Doc struct {
	Id int

	Title string

	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is a single annotated sentence of a Doc.
type Sentence struct {
	// Id is the index of the sentence inside of the doc, starting at 0.
	Id    int `json:"id"`
	DocId int `json:"doc"`

	// Meta is the value of the `# sent_id` comment, if any.
	Meta string `json:"meta,omitempty"`

	// Text is the value of the `# text` comment, if any.
	Text string `json:"text,omitempty"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// Id is the 1-based position of the token in the sentence.
	Id   int      `json:"id"`
	Head Governor `json:"head"`
	Dep  string   `json:"dep"`

	// Pos is the coarse (universal) part-of-speech tag
	Pos string `json:"pos"`

	// A string containing detailed POS data. For the Czech tag set its
	// first two characters encode the verb class.
	Tag string `json:"tag"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Feats and Misc are kept verbatim for round trips.
	Feats string `json:"feats,omitempty"`
	Misc  string `json:"misc,omitempty"`
}

// TagPrefix returns the first two characters of the detailed tag.
func (t Token) TagPrefix() string {
	if len(t.Tag) < 2 {
		return t.Tag
	}
	return t.Tag[:2]
}

// Surface joins the surface forms of the tokens with a single space.
func Surface(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, tk := range tokens {
		words[i] = tk.Text
	}
	return strings.Join(words, " ")
}
