package clause

import (
	sent "github.com/revelaction/lds/sentence"
)

// detailed tag prefixes of the Czech positional tag set
const (
	prefixConditional = "Vc"
	prefixPassive     = "Vs"
	prefixPresent     = "VB"
	prefixImperative  = "Vi"
	prefixParticiple  = "Vp"
)

// IsFiniteVerb reports whether token id is a finite verb:
//
//   - detailed tags Vc, Vs, VB and Vi are always finite.
//   - a Vp participle is finite unless its governor is an AUX, which then
//     heads the clause instead.
//   - an AUX is finite if it governs a Vp participle (compound tense).
//
// Any other tag is not finite.
func IsFiniteVerb(t *sent.Tree, id int) bool {
	tk, ok := t.Token(id)
	if !ok {
		return false
	}

	switch tk.TagPrefix() {
	case prefixConditional, prefixPassive, prefixPresent, prefixImperative:
		return true
	case prefixParticiple:
		switch tk.Head.Kind() {
		case sent.Attached:
			gov, _ := tk.Head.Id()
			g, found := t.Token(gov)
			return !found || g.Pos != sent.PosAux
		default:
			return true
		}
	}

	if tk.Pos == sent.PosAux {
		for _, k := range t.Kids(id) {
			kid, _ := t.Token(k)
			if kid.TagPrefix() == prefixParticiple {
				return true
			}
		}
	}

	return false
}

// IsAnchor reports whether token id heads a clause. A SCONJ is an anchor if
// it governs a finite verb. A finite verb is an anchor unless it is governed
// by a SCONJ, in which case the SCONJ is the anchor of the clause.
func IsAnchor(t *sent.Tree, id int) bool {
	tk, ok := t.Token(id)
	if !ok {
		return false
	}

	if tk.Pos == sent.PosSconj {
		for _, k := range t.Kids(id) {
			if IsFiniteVerb(t, k) {
				return true
			}
		}
		return false
	}

	if !IsFiniteVerb(t, id) {
		return false
	}

	switch tk.Head.Kind() {
	case sent.Attached:
		gov, _ := tk.Head.Id()
		g, found := t.Token(gov)
		return !found || g.Pos != sent.PosSconj
	default:
		return true
	}
}
