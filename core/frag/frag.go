// Package frag models double-stranded DNA fragments and the geometry of
// their ends. The end model here is the single source of truth for cut
// overhangs: restriction digestion and PCR tail handling both classify
// their boundaries through it so the two simulators agree byte-for-byte.
package frag

import "github.com/Mochibw/PrimerPioneer/core/seq"

// Kind classifies one end of a double-strand break.
type Kind string

const (
	Blunt         Kind = "blunt"
	FiveOverhang  Kind = "5_overhang"
	ThreeOverhang Kind = "3_overhang"
)

// End is one side of a double-strand break. Invariant:
// Kind == Blunt iff Seq == "" iff Length == 0; otherwise Length == len(Seq).
type End struct {
	Kind   Kind   `json:"kind"`
	Seq    string `json:"seq"`
	Length int    `json:"length"`
}

// BluntEnd returns the canonical blunt end value.
func BluntEnd() End { return End{Kind: Blunt} }

// Fragment is a piece of a molecule between two boundaries. Start/End are
// 1-based inclusive on the owning molecule; Start > End encodes a span
// wrapping the circular origin. Length always equals the wrapped span.
type Fragment struct {
	ID        string     `json:"id"`
	Start     int        `json:"start"`
	End       int        `json:"end"`
	Length    int        `json:"length"`
	Strand    seq.Strand `json:"strand"`
	Overhang5 End        `json:"overhang_5"`
	Overhang3 End        `json:"overhang_3"`
	Sequence  string     `json:"sequence,omitempty"`
}

// Ends classifies the two sides of one boundary from its nick stagger.
// stagger is bottomNick - topNick, and between holds the plus-strand bases
// lying between the two nicks (len(between) == |stagger|).
//
// stagger > 0 leaves recessed top strands: both fragments expose
// 5'-overhangs, the downstream (right) fragment carrying between itself and
// the upstream (left) fragment its reverse complement. stagger < 0 is the
// mirror case with 3'-overhangs. stagger == 0 is a blunt break.
//
// The results are strand-symmetric: left.Seq and right.Seq are always
// reverse complements of each other, so re-ligating the two ends restores
// the original duplex.
func Ends(stagger int, between string) (left, right End) {
	switch {
	case stagger == 0:
		return BluntEnd(), BluntEnd()
	case stagger > 0:
		left = End{Kind: FiveOverhang, Seq: seq.RevComp(between), Length: stagger}
		right = End{Kind: FiveOverhang, Seq: between, Length: stagger}
	default:
		left = End{Kind: ThreeOverhang, Seq: between, Length: -stagger}
		right = End{Kind: ThreeOverhang, Seq: seq.RevComp(between), Length: -stagger}
	}
	return left, right
}

// Complementary reports whether two ends could anneal: blunt pairs only
// with blunt, and a sticky end pairs with the same kind carrying the
// reverse-complementary sequence.
func Complementary(a, b End) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == Blunt {
		return true
	}
	return a.Length == b.Length && a.Seq == seq.RevComp(b.Seq)
}
