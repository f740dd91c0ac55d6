// Package endmod models enzymatic end conversions between the sticky and
// blunt fragment ends produced by digestion and PCR: polishing overhangs
// away and adding homopolymer tails for TA-style workflows.
//
// Fragment sequences are top-strand text: a 5'-overhang at the left
// boundary is part of the top strand (and of Sequence), while the right
// boundary's overhang belongs to the bottom strand unless it is a
// 3'-overhang of the top strand itself.
package endmod

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// Repair blunts both ends of a fragment the way a fill-in/chew-back
// polymerase mix does: recessed 3' ends are filled against 5'-overhangs
// and protruding 3' ends are chewed back. The returned fragment has blunt
// ends and a top strand adjusted accordingly; a fragment that is already
// blunt is returned unchanged.
func Repair(f frag.Fragment) (frag.Fragment, string) {
	if f.Overhang5.Kind == frag.Blunt && f.Overhang3.Kind == frag.Blunt {
		return f, "fragment is already blunt; nothing to repair"
	}

	sequence := f.Sequence
	switch f.Overhang3.Kind {
	case frag.FiveOverhang:
		// bottom strand protrudes at the right boundary: fill the top
		// strand against it
		sequence += seq.RevComp(f.Overhang3.Seq)
	case frag.ThreeOverhang:
		// the top strand itself protrudes: chew it back
		if f.Overhang3.Length <= len(sequence) {
			sequence = sequence[:len(sequence)-f.Overhang3.Length]
		}
	}
	// The left boundary needs no top-strand change: a 5'-overhang there is
	// already part of the top strand and gets paired by fill-in, and a
	// 3'-overhang there protrudes on the bottom strand and is chewed.

	out := f
	out.ID = uuid.NewString()
	out.Sequence = sequence
	out.Length = len(sequence)
	out.Overhang5 = frag.BluntEnd()
	out.Overhang3 = frag.BluntEnd()
	return out, "end repair completed; sticky ends converted to blunt"
}

// ATail appends an adenine overhang to the fragment's top-strand 3'
// terminus, as a non-proofreading polymerase does after amplification.
func ATail(f frag.Fragment, n int) (frag.Fragment, string) {
	return homopolymerTail(f, 'A', n)
}

// TTail appends a thymine overhang, the vector-side complement for TA
// cloning.
func TTail(f frag.Fragment, n int) (frag.Fragment, string) {
	return homopolymerTail(f, 'T', n)
}

func homopolymerTail(f frag.Fragment, base byte, n int) (frag.Fragment, string) {
	if n < 1 {
		n = 1
	}
	tail := strings.Repeat(string(base), n)
	out := f
	out.ID = uuid.NewString()
	out.Sequence = f.Sequence + tail
	out.Length = len(out.Sequence)
	out.Overhang3 = frag.End{Kind: frag.ThreeOverhang, Seq: tail, Length: n}
	return out, "added a " + tail + " 3' overhang"
}
