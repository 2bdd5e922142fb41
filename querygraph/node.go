package querygraph

import "github.com/vuthanhtung2412/rankgraph/queryterm"

// Kind tags the variant a QueryNode holds: Start, End, Deleted, or a
// Term carrying a LocatedQueryTerm.
type Kind uint8

const (
	// KindStart marks the unique entry node, always at index 0.
	KindStart Kind = iota
	// KindEnd marks the unique exit node.
	KindEnd
	// KindDeleted is a tombstone: the node index is preserved so that
	// ranking-rule graphs built earlier against this QueryGraph keep
	// valid indices, but the node itself carries no term and has no
	// live edges.
	KindDeleted
	// KindTerm holds a LocatedQueryTerm candidate.
	KindTerm
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindEnd:
		return "End"
	case KindDeleted:
		return "Deleted"
	case KindTerm:
		return "Term"
	default:
		return "Unknown"
	}
}

// Node is one position in a QueryGraph. Term is populated only when
// Kind == KindTerm; reading it otherwise is a programming error (callers
// should check Kind first).
type Node struct {
	Kind Kind
	Term queryterm.LocatedQueryTerm
}

// IsDeleted reports whether this node is a tombstone.
func (n Node) IsDeleted() bool { return n.Kind == KindDeleted }
