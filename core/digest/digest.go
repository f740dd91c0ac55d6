// Package digest simulates multi-enzyme restriction digestion. All
// requested enzymes cut simultaneously: their nick positions are unioned
// before the molecule is partitioned, so the result is independent of the
// order enzymes are named in.
package digest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Mochibw/PrimerPioneer/core/enzyme"
	"github.com/Mochibw/PrimerPioneer/core/frag"
	"github.com/Mochibw/PrimerPioneer/core/scan"
	"github.com/Mochibw/PrimerPioneer/core/seq"
)

// ProximityMargin is the distance (in bases) from a linear terminus inside
// which a cut is flagged as potentially inefficient.
const ProximityMargin = 3

// Result aggregates one simultaneous digestion. Cuts are sorted,
// deduplicated 1-based positions: a cut at k breaks the top strand between
// bases k and k+1 (k = molecule length means the circular origin boundary).
type Result struct {
	Enzymes   []string        `json:"enzymes"`
	Cuts      []int           `json:"cuts"`
	Fragments []frag.Fragment `json:"fragments"`
	Info      []string        `json:"info,omitempty"`
}

// boundary records the cut geometry at one top-strand border: the ends the
// upstream and downstream fragments expose there.
type boundary struct {
	left  frag.End // 3' side of the upstream fragment
	right frag.End // 5' side of the downstream fragment
}

// Digest resolves the named enzymes against the builtin table, locates
// every recognition site on both strands (honoring circular wraparound),
// unions the cuts, and partitions the molecule. An unknown enzyme name
// aborts the call; finding no sites at all is an informational result, not
// an error.
func Digest(rec seq.SequenceRecord, names []string) (Result, error) {
	specs := make([]enzyme.Spec, 0, len(names))
	for _, n := range names {
		sp, err := enzyme.Lookup(n)
		if err != nil {
			return Result{}, err
		}
		specs = append(specs, sp)
	}

	template := strings.ToUpper(rec.Sequence)
	total := len(template)
	res := Result{Enzymes: append([]string(nil), names...)}
	if total == 0 {
		return res, nil
	}

	borders := map[int]boundary{}
	var info []string

	for _, sp := range specs {
		for _, site := range scan.FindSites(template, sp.Site, rec.Circular) {
			top, bottom := sp.CutTop, sp.CutBottom
			if site.Strand == seq.Minus {
				// Reverse-complement symmetry: offsets flip across the
				// site when the motif was found on the bottom strand.
				top, bottom = site.Length-sp.CutBottom, site.Length-sp.CutTop
			}

			if !rec.Circular {
				if site.Start < ProximityMargin || total-(site.Start+site.Length) < ProximityMargin {
					msg := fmt.Sprintf("site for %s at %d is within %d bases of a terminus and may cut inefficiently",
						sp.Name, site.Start+1, ProximityMargin)
					info = appendUnique(info, msg)
				}
			}

			topAbs := site.Start + top       // nick between topAbs-1 and topAbs
			bottomAbs := site.Start + bottom // bottom-strand nick, top-strand numbering
			border := mod(topAbs-1, total)

			stagger := bottom - top
			between := betweenNicks(template, topAbs, bottomAbs, total)
			left, right := frag.Ends(stagger, between)
			borders[border] = boundary{left: left, right: right}
		}
	}

	if len(borders) == 0 {
		res.Info = append(info, "no recognition site found; molecule returned intact")
		res.Fragments = []frag.Fragment{wholeMolecule(rec, template)}
		return res, nil
	}

	cuts := make([]int, 0, len(borders))
	for b := range borders {
		cuts = append(cuts, b)
	}
	sort.Ints(cuts)

	if rec.Circular {
		res.Fragments = circularFragments(template, cuts, borders)
	} else {
		res.Fragments = linearFragments(template, cuts, borders)
	}
	for _, b := range cuts {
		res.Cuts = append(res.Cuts, b+1)
	}
	res.Info = info
	return res, nil
}

// Select models gel purification: it keeps the fragments at the given
// 1-based positions of a digestion result, matching the numbering the
// fragment table shows. Out-of-range positions are skipped with a warning,
// never a failure; the enzyme and cut provenance is carried through.
func Select(res Result, positions []int) Result {
	out := Result{
		Enzymes: append([]string(nil), res.Enzymes...),
		Cuts:    append([]int(nil), res.Cuts...),
		Info:    append([]string(nil), res.Info...),
	}

	var invalid []int
	for _, p := range positions {
		if p < 1 || p > len(res.Fragments) {
			invalid = append(invalid, p)
			continue
		}
		out.Fragments = append(out.Fragments, res.Fragments[p-1])
	}

	out.Info = append(out.Info, fmt.Sprintf("selected %d of %d fragment(s)",
		len(out.Fragments), len(res.Fragments)))
	if len(invalid) > 0 {
		out.Info = append(out.Info, fmt.Sprintf("ignored out-of-range fragment position(s) %v", invalid))
	}
	return out
}

// betweenNicks extracts the plus-strand bases between the two nicks of one
// cut, wrapping across the origin when needed.
func betweenNicks(template string, topAbs, bottomAbs, total int) string {
	lo, hi := topAbs, bottomAbs
	if lo > hi {
		lo, hi = hi, lo
	}
	var b strings.Builder
	for i := lo; i < hi; i++ {
		b.WriteByte(template[mod(i, total)])
	}
	return b.String()
}

func circularFragments(template string, cuts []int, borders map[int]boundary) []frag.Fragment {
	total := len(template)
	n := len(cuts)
	out := make([]frag.Fragment, 0, n)
	for i := 0; i < n; i++ {
		bLeft := cuts[i]
		bRight := cuts[(i+1)%n]
		start := (bLeft+1)%total + 1
		end := bRight + 1
		length := seq.SpanLength(start, end, total, true)
		out = append(out, frag.Fragment{
			ID:        uuid.NewString(),
			Start:     start,
			End:       end,
			Length:    length,
			Strand:    seq.Plus,
			Overhang5: borders[bLeft].right,
			Overhang3: borders[bRight].left,
			Sequence:  seq.SpanSequence(template, start, end, true),
		})
	}
	return out
}

func linearFragments(template string, cuts []int, borders map[int]boundary) []frag.Fragment {
	total := len(template)
	// A border at the final base would nick beyond the last bond; it cannot
	// partition a linear molecule.
	interior := cuts[:0:0]
	for _, b := range cuts {
		if b <= total-2 {
			interior = append(interior, b)
		}
	}

	points := make([]int, 0, len(interior)+2)
	points = append(points, -1)
	points = append(points, interior...)
	points = append(points, total-1)

	out := make([]frag.Fragment, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		bLeft, bRight := points[i], points[i+1]
		start, end := bLeft+2, bRight+1
		if end < start {
			continue
		}
		o5, o3 := frag.BluntEnd(), frag.BluntEnd()
		if bLeft >= 0 {
			o5 = borders[bLeft].right
		}
		if bd, ok := borders[bRight]; ok {
			o3 = bd.left
		}
		length := end - start + 1
		out = append(out, frag.Fragment{
			ID:        uuid.NewString(),
			Start:     start,
			End:       end,
			Length:    length,
			Strand:    seq.Plus,
			Overhang5: o5,
			Overhang3: o3,
			Sequence:  template[start-1 : end],
		})
	}
	return out
}

func wholeMolecule(rec seq.SequenceRecord, template string) frag.Fragment {
	return frag.Fragment{
		ID:        uuid.NewString(),
		Start:     1,
		End:       len(template),
		Length:    len(template),
		Strand:    seq.Plus,
		Overhang5: frag.BluntEnd(),
		Overhang3: frag.BluntEnd(),
		Sequence:  template,
	}
}

func appendUnique(list []string, msg string) []string {
	for _, m := range list {
		if m == msg {
			return list
		}
	}
	return append(list, msg)
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
