package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/lds/sentence"
)

// Write serializes sentences in CoNLL-U. The DEPS column is not kept and is
// written as "_". Unattached heads are written as "_".
func Write(w io.Writer, sentences []sent.Sentence) error {
	bw := bufio.NewWriter(w)

	for _, s := range sentences {
		if s.Meta != "" {
			fmt.Fprintf(bw, "# %s = %s\n", sentIdComment, s.Meta)
		}
		if s.Text != "" {
			fmt.Fprintf(bw, "# %s = %s\n", textComment, s.Text)
		}

		for _, tk := range s.Tokens {
			bw.WriteString(FormatRow(tk))
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// FormatRow returns the CoNLL-U line of a token, without newline.
func FormatRow(tk sent.Token) string {
	head := empty
	if !tk.Head.IsUnattached() {
		head = strconv.Itoa(tk.Head.Int())
	}

	fields := []string{
		strconv.Itoa(tk.Id),
		tk.Text,
		tk.Lemma,
		tk.Pos,
		tk.Tag,
		tk.Feats,
		head,
		tk.Dep,
		empty,
		tk.Misc,
	}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = empty
		}
	}
	return strings.Join(fields, fieldSeparator)
}
