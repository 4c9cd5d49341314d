package sentence

import (
	"encoding/json"
	"fmt"
)

// GovernorKind tells which of the three governor variants a Governor holds.
type GovernorKind uint8

const (
	// Unattached marks a token without a valid head (parse error or
	// incomplete annotation). It is the zero value.
	Unattached GovernorKind = iota
	// Root marks the syntactic head of the sentence.
	Root
	// Attached marks a token governed by another token.
	Attached
)

func (k GovernorKind) String() string {
	switch k {
	case Root:
		return "root"
	case Attached:
		return "attached"
	default:
		return "unattached"
	}
}

// Governor is the head reference of a token: Root, Governor(id) or
// Unattached.
type Governor struct {
	kind GovernorKind
	id   int
}

// RootGovernor returns the governor of a sentence head.
func RootGovernor() Governor {
	return Governor{kind: Root}
}

// GovernedBy returns a governor pointing to token id.
func GovernedBy(id int) Governor {
	return Governor{kind: Attached, id: id}
}

// UnattachedGovernor returns the governor of a token without head.
func UnattachedGovernor() Governor {
	return Governor{}
}

func (g Governor) Kind() GovernorKind { return g.kind }

func (g Governor) IsRoot() bool { return g.kind == Root }

func (g Governor) IsUnattached() bool { return g.kind == Unattached }

// Id returns the governing token id. ok is false for Root and Unattached.
func (g Governor) Id() (id int, ok bool) {
	if g.kind != Attached {
		return 0, false
	}
	return g.id, true
}

// Is reports whether g points to token id.
func (g Governor) Is(id int) bool {
	return g.kind == Attached && g.id == id
}

func (g Governor) String() string {
	switch g.kind {
	case Root:
		return "Root"
	case Attached:
		return fmt.Sprintf("Governor(%d)", g.id)
	default:
		return "Unattached"
	}
}

// Int returns the CoNLL integer convention of the governor: 0 for Root, -1
// for Unattached, the governor id otherwise.
func (g Governor) Int() int {
	switch g.kind {
	case Root:
		return 0
	case Attached:
		return g.id
	default:
		return -1
	}
}

// GovernorFromInt is the inverse of Governor.Int.
func GovernorFromInt(n int) Governor {
	switch {
	case n == 0:
		return RootGovernor()
	case n > 0:
		return GovernedBy(n)
	default:
		return UnattachedGovernor()
	}
}

func (g Governor) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Int())
}

func (g *Governor) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("governor: %w", err)
	}
	*g = GovernorFromInt(n)
	return nil
}
