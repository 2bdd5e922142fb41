// Package bitmap defines the document-id set and the scalar types that flow
// through the ranking pipeline: DocumentID, AttributeID and Proximity.
//
// A Bitmap wraps a compressed 32-bit integer set (RoaringBitmap) so that
// unions, intersections and cardinality checks over candidate document sets
// stay sub-linear even for large result universes. Every bucket, universe
// and edge-resolved docid set in this module is a Bitmap.
package bitmap

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// DocumentID identifies a document in the index.
type DocumentID = uint32

// AttributeID identifies a searchable field/attribute within a document.
type AttributeID = uint16

// Proximity is the distance between two words' positions within a document,
// capped at MaxDistance.
type Proximity = uint8

// MaxDistance is the exclusive upper bound on Proximity: proximities are
// enumerated over [1, MaxDistance).
const MaxDistance Proximity = 8

// Bitmap is a compressed set of DocumentID values.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New returns an empty Bitmap.
func New() Bitmap {
	return Bitmap{rb: roaring.New()}
}

// Of returns a Bitmap containing exactly the given ids.
func Of(ids ...DocumentID) Bitmap {
	return Bitmap{rb: roaring.BitmapOf(ids...)}
}

// FromSlice is an alias of Of kept for call sites that build ids
// programmatically rather than as a literal.
func FromSlice(ids []DocumentID) Bitmap {
	return Bitmap{rb: roaring.BitmapOf(ids...)}
}

func (b Bitmap) ensure() *roaring.Bitmap {
	if b.rb == nil {
		return roaring.New()
	}
	return b.rb
}

// Len reports the number of documents in the set.
func (b Bitmap) Len() int {
	if b.rb == nil {
		return 0
	}
	return int(b.rb.GetCardinality())
}

// IsEmpty reports whether the set has no documents.
func (b Bitmap) IsEmpty() bool {
	return b.Len() == 0
}

// Contains reports whether id is a member of the set.
func (b Bitmap) Contains(id DocumentID) bool {
	if b.rb == nil {
		return false
	}
	return b.rb.Contains(id)
}

// Clone returns an independent copy of b.
func (b Bitmap) Clone() Bitmap {
	return Bitmap{rb: b.ensure().Clone()}
}

// Add returns a new Bitmap containing b plus id, leaving b untouched.
func (b Bitmap) Add(id DocumentID) Bitmap {
	out := b.Clone()
	out.rb.Add(id)
	return out
}

// And returns the intersection of b and other. Neither operand is mutated.
func (b Bitmap) And(other Bitmap) Bitmap {
	return Bitmap{rb: roaring.And(b.ensure(), other.ensure())}
}

// Or returns the union of b and other. Neither operand is mutated.
func (b Bitmap) Or(other Bitmap) Bitmap {
	return Bitmap{rb: roaring.Or(b.ensure(), other.ensure())}
}

// AndNot returns the documents in b that are not in other.
func (b Bitmap) AndNot(other Bitmap) Bitmap {
	return Bitmap{rb: roaring.AndNot(b.ensure(), other.ensure())}
}

// ToSlice returns the sorted document ids in the set.
func (b Bitmap) ToSlice() []DocumentID {
	if b.rb == nil {
		return nil
	}
	return b.rb.ToArray()
}

// Iterator walks the set in ascending order.
func (b Bitmap) Iterator() roaring.IntPeekable {
	return b.ensure().Iterator()
}

// String renders the set for diagnostics and test failure messages.
func (b Bitmap) String() string {
	return fmt.Sprintf("Bitmap%v", b.ToSlice())
}

// MarshalBinary serializes b to roaring's native compressed format, for
// storage backends that persist a posting list as a single blob
// attribute.
func (b Bitmap) MarshalBinary() ([]byte, error) {
	return b.ensure().ToBytes()
}

// UnmarshalBinary decodes a blob written by MarshalBinary.
func UnmarshalBinary(data []byte) (Bitmap, error) {
	rb := roaring.New()
	if len(data) == 0 {
		return Bitmap{rb: rb}, nil
	}
	if _, err := rb.FromBuffer(data); err != nil {
		return Bitmap{}, err
	}
	return Bitmap{rb: rb}, nil
}
